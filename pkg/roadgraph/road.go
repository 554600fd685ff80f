package roadgraph

import (
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

// Road is a routable feature that lies inside a single mwm.
type Road struct {
	FeatureID          uint32
	MwmID              datastructure.NumMwmID
	Points             []datastructure.LatLonWithAltitude
	NodeIDs            []int64
	OneWay             bool
	PassThroughAllowed bool
	HighwayType        datastructure.HighwayType
	MaxSpeedKmH        float64
	Options            datastructure.RoutingOptions
	// AccessConditional roads are closed under some conditions (time of day, season).
	AccessConditional bool
	Name              string
}

func (r *Road) GetPointsCount() int {
	return len(r.Points)
}

func (r *Road) GetSegmentsCount() int {
	if len(r.Points) < 2 {
		return 0
	}
	return len(r.Points) - 1
}

// RoadPoint is a point index of a road, used as joint member.
type RoadPoint struct {
	MwmID     datastructure.NumMwmID
	FeatureID uint32
	PointIdx  int
}

type roadKey struct {
	mwmID     datastructure.NumMwmID
	featureID uint32
}

func RoadTypeMaxSpeed(roadType datastructure.HighwayType) float64 {
	switch roadType {
	case datastructure.HighwayMotorway:
		return 95
	case datastructure.HighwayTrunk:
		return 85
	case datastructure.HighwayPrimary:
		return 75
	case datastructure.HighwaySecondary:
		return 65
	case datastructure.HighwayTertiary:
		return 50
	case datastructure.HighwayUnclassified:
		return 50
	case datastructure.HighwayResidential:
		return 30
	case datastructure.HighwayService:
		return 20
	case datastructure.HighwayMotorwayLink:
		return 90
	case datastructure.HighwayTrunkLink:
		return 80
	case datastructure.HighwayPrimaryLink:
		return 70
	case datastructure.HighwaySecondaryLink:
		return 60
	case datastructure.HighwayTertiaryLink:
		return 50
	case datastructure.HighwayLivingStreet:
		return 20
	case datastructure.HighwayTrack:
		return 15
	case datastructure.RouteFerry:
		return 25
	case datastructure.RouteShuttleTrain:
		return 60
	default:
		return 40
	}
}
