package datastructure

import "strings"

// Purpose selects what a weight is computed for.
type Purpose uint8

const (
	PurposeWeight Purpose = iota
	PurposeETA
)

type WorldGraphMode uint8

const (
	// ModeNoLeaps searches the full segment graph.
	ModeNoLeaps WorldGraphMode = iota
	// ModeLeapsOnly searches mwm transitions only.
	ModeLeapsOnly
	ModeJoints
	ModeUndefined
)

func (m WorldGraphMode) String() string {
	switch m {
	case ModeNoLeaps:
		return "NoLeaps"
	case ModeLeapsOnly:
		return "LeapsOnly"
	case ModeJoints:
		return "Joints"
	default:
		return "Undefined"
	}
}

// RoutingOptions is a bitmask of road kinds a route may avoid.
type RoutingOptions uint8

const (
	RoadUsual    RoutingOptions = 0
	RoadToll     RoutingOptions = 1 << 0
	RoadMotorway RoutingOptions = 1 << 1
	RoadFerry    RoutingOptions = 1 << 2
	RoadDirty    RoutingOptions = 1 << 3
)

func (o RoutingOptions) Has(flag RoutingOptions) bool {
	return o&flag != 0
}

func (o RoutingOptions) Add(flag RoutingOptions) RoutingOptions {
	return o | flag
}

func ParseRoutingOptions(names []string) RoutingOptions {
	var o RoutingOptions
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "toll":
			o = o.Add(RoadToll)
		case "motorway":
			o = o.Add(RoadMotorway)
		case "ferry":
			o = o.Add(RoadFerry)
		case "dirty":
			o = o.Add(RoadDirty)
		}
	}
	return o
}

type HighwayType uint8

const (
	HighwayUnknown HighwayType = iota
	HighwayMotorway
	HighwayMotorwayLink
	HighwayTrunk
	HighwayTrunkLink
	HighwayPrimary
	HighwayPrimaryLink
	HighwaySecondary
	HighwaySecondaryLink
	HighwayTertiary
	HighwayTertiaryLink
	HighwayUnclassified
	HighwayResidential
	HighwayLivingStreet
	HighwayService
	HighwayTrack
	HighwayRoad
	RouteFerry
	RouteShuttleTrain
)

var highwayTypeNames = map[string]HighwayType{
	"motorway":       HighwayMotorway,
	"motorway_link":  HighwayMotorwayLink,
	"trunk":          HighwayTrunk,
	"trunk_link":     HighwayTrunkLink,
	"primary":        HighwayPrimary,
	"primary_link":   HighwayPrimaryLink,
	"secondary":      HighwaySecondary,
	"secondary_link": HighwaySecondaryLink,
	"tertiary":       HighwayTertiary,
	"tertiary_link":  HighwayTertiaryLink,
	"unclassified":   HighwayUnclassified,
	"residential":    HighwayResidential,
	"living_street":  HighwayLivingStreet,
	"service":        HighwayService,
	"track":          HighwayTrack,
	"road":           HighwayRoad,
	"ferry":          RouteFerry,
	"shuttle_train":  RouteShuttleTrain,
}

func HighwayTypeFromString(s string) HighwayType {
	if t, ok := highwayTypeNames[s]; ok {
		return t
	}
	return HighwayUnknown
}

type HighwayCategory uint8

const (
	CategoryUnknown HighwayCategory = iota
	CategoryMajor
	CategoryPrimary
	CategoryUsual
	CategoryTransit
	CategoryMinor
)

func (t HighwayType) Category() HighwayCategory {
	switch t {
	case HighwayUnknown:
		return CategoryUnknown
	case HighwayMotorway, HighwayMotorwayLink, HighwayTrunk, HighwayTrunkLink:
		return CategoryMajor
	case HighwayPrimary, HighwayPrimaryLink:
		return CategoryPrimary
	case HighwaySecondary, HighwaySecondaryLink, HighwayTertiary, HighwayTertiaryLink:
		return CategoryUsual
	case RouteFerry, RouteShuttleTrain:
		return CategoryTransit
	default:
		return CategoryMinor
	}
}
