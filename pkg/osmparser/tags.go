package osmparser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/osm"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

var (
	skipHighway = map[string]struct{}{
		"footway":                {},
		"construction":           {},
		"cycleway":               {},
		"path":                   {},
		"pedestrian":             {},
		"busway":                 {},
		"steps":                  {},
		"bridleway":              {},
		"corridor":               {},
		"street_lamp":            {},
		"bus_stop":               {},
		"crossing":               {},
		"cyclist_waiting_aid":    {},
		"elevator":               {},
		"emergency_bay":          {},
		"emergency_access_point": {},
		"give_way":               {},
		"phone":                  {},
		"ladder":                 {},
		"milestone":              {},
		"passing_place":          {},
		"platform":               {},
		"proposed":               {},
		"speed_camera":           {},
		"bus_guideway":           {},
		"speed_display":          {},
		"stop":                   {},
		"toll_gantry":            {},
		"traffic_mirror":         {},
		"traffic_signals":        {},
		"trailhead":              {},
	}

	dirtSurfaces = map[string]struct{}{
		"unpaved":     {},
		"dirt":        {},
		"earth":       {},
		"ground":      {},
		"gravel":      {},
		"fine_gravel": {},
		"grass":       {},
		"mud":         {},
		"sand":        {},
		"compacted":   {},
		"pebblestone": {},
		"grass_paver": {},
		"woodchips":   {},
		"rock":        {},
	}

	// access values that allow only local traffic. routes may start or end there but not pass through.
	noPassThroughAccess = map[string]struct{}{
		"private":     {},
		"destination": {},
		"delivery":    {},
		"customers":   {},
		"permit":      {},
	}
)

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	junction := way.Tags.Find("junction")
	if highway != "" {
		if _, ok := skipHighway[highway]; !ok {
			return true
		}
	} else if route := way.Tags.Find("route"); route == "road" || route == "ferry" || route == "shuttle_train" {
		return true
	} else if junction != "" {
		return true
	}
	return false
}

func isRestricted(value string) bool {
	switch value {
	case "no", "restricted", "military", "emergency", "private", "permit":
		return true
	}
	return false
}

type direction struct {
	oneWay  bool
	forward bool
}

// wayDirection. forward false means the way is drivable against the order of its nodes only.
func wayDirection(way *osm.Way) direction {
	vehicleForward := isRestricted(way.Tags.Find("vehicle:forward"))
	motorVehicleForward := isRestricted(way.Tags.Find("motor_vehicle:forward"))
	vehicleBackward := isRestricted(way.Tags.Find("vehicle:backward"))
	motorVehicleBackward := isRestricted(way.Tags.Find("motor_vehicle:backward"))

	oneway := way.Tags.Find("oneway")
	d := direction{forward: true}
	switch {
	case oneway == "no" || oneway == "false" || oneway == "0":
	case oneway != "" || vehicleForward || motorVehicleForward || vehicleBackward || motorVehicleBackward:
		d.oneWay = true
	}
	switch way.Tags.Find("junction") {
	case "roundabout", "circular":
		if oneway == "" {
			d.oneWay = true
		}
	}
	if highway := way.Tags.Find("highway"); highway == "motorway" && oneway == "" {
		d.oneWay = true
	}
	if oneway == "-1" || vehicleForward || motorVehicleForward {
		d.forward = false
	}
	return d
}

func highwayType(way *osm.Way) datastructure.HighwayType {
	if route := way.Tags.Find("route"); route == "ferry" || route == "shuttle_train" {
		return datastructure.HighwayTypeFromString(route)
	}
	return datastructure.HighwayTypeFromString(way.Tags.Find("highway"))
}

func routingOptions(way *osm.Way, highway datastructure.HighwayType) datastructure.RoutingOptions {
	options := datastructure.RoadUsual
	if toll := way.Tags.Find("toll"); toll != "" && toll != "no" {
		options = options.Add(datastructure.RoadToll)
	}
	if highway == datastructure.HighwayMotorway || highway == datastructure.HighwayMotorwayLink {
		options = options.Add(datastructure.RoadMotorway)
	}
	if highway == datastructure.RouteFerry {
		options = options.Add(datastructure.RoadFerry)
	}
	if _, ok := dirtSurfaces[way.Tags.Find("surface")]; ok || highway == datastructure.HighwayTrack {
		options = options.Add(datastructure.RoadDirty)
	}
	return options
}

func passThroughAllowed(way *osm.Way) bool {
	for _, key := range []string{"access", "vehicle", "motor_vehicle", "motorcar"} {
		if _, ok := noPassThroughAccess[way.Tags.Find(key)]; ok {
			return false
		}
	}
	return way.Tags.Find("highway") != "service" || way.Tags.Find("service") == ""
}

func accessConditional(way *osm.Way) bool {
	for _, key := range []string{"access:conditional", "vehicle:conditional", "motor_vehicle:conditional", "motorcar:conditional"} {
		if way.Tags.Find(key) != "" {
			return true
		}
	}
	return false
}

// parseMaxSpeed returns the speed in km/h. "none", "walk" and friends yield 0.
func parseMaxSpeed(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	factor := 1.0
	switch {
	case strings.HasSuffix(value, "mph"):
		factor = 1.60934
		value = strings.TrimSuffix(value, "mph")
	case strings.HasSuffix(value, "km/h"):
		value = strings.TrimSuffix(value, "km/h")
	case strings.HasSuffix(value, "knots"):
		factor = 1.852
		value = strings.TrimSuffix(value, "knots")
	}
	value = strings.TrimSpace(value)
	if value == "" || value[0] < '0' || value[0] > '9' {
		return 0, nil
	}
	speed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid maxspeed %q: %w", value, err)
	}
	return speed * factor, nil
}

func parseAltitude(node *osm.Node) int16 {
	ele, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(node.Tags.Find("ele")), "m"), 64)
	if err != nil {
		return 0
	}
	return int16(ele)
}

func isBarrier(node *osm.Node) bool {
	switch node.Tags.Find("barrier") {
	case "", "no", "entrance", "border_control", "toll_booth", "cattle_grid", "kerb":
	default:
		return true
	}
	return node.Tags.Find("ford") == "yes"
}
