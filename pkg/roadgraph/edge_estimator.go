package roadgraph

import (
	"math"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/geo"
)

const (
	DefaultMaxSpeedKmH     = 130.0
	DefaultOffroadSpeedKmH = 3.0

	ferryLandingPenaltyS = 60.0 * 2
)

// weight multipliers per road category, an hour on a minor road costs more than an hour on a motorway.
var categoryWeightFactor = map[datastructure.HighwayCategory]float64{
	datastructure.CategoryMajor:   1.0,
	datastructure.CategoryPrimary: 1.0,
	datastructure.CategoryUsual:   1.1,
	datastructure.CategoryTransit: 1.0,
	datastructure.CategoryMinor:   1.3,
	datastructure.CategoryUnknown: 1.2,
}

func kmhToMps(speed float64) float64 {
	return speed * 1000 / 3600
}

// EdgeEstimator turns road geometry into travel time. weights are never below distance / max speed,
// so the heuristic stays admissible.
type EdgeEstimator struct {
	maxSpeedKmH     float64
	offroadSpeedKmH float64
}

func NewEdgeEstimator(maxSpeedKmH, offroadSpeedKmH float64) *EdgeEstimator {
	if maxSpeedKmH <= 0 {
		maxSpeedKmH = DefaultMaxSpeedKmH
	}
	if offroadSpeedKmH <= 0 {
		offroadSpeedKmH = DefaultOffroadSpeedKmH
	}
	return &EdgeEstimator{maxSpeedKmH: maxSpeedKmH, offroadSpeedKmH: offroadSpeedKmH}
}

func (e *EdgeEstimator) GetMaxSpeedKmH() float64 {
	return e.maxSpeedKmH
}

func (e *EdgeEstimator) SpeedKmH(road *Road) float64 {
	speed := road.MaxSpeedKmH
	if speed <= 0 {
		speed = RoadTypeMaxSpeed(road.HighwayType)
	}
	return math.Min(speed, e.maxSpeedKmH)
}

func (e *EdgeEstimator) CalcSegmentWeight(road *Road, segmentIdx uint32, purpose datastructure.Purpose) datastructure.RouteWeight {
	from := road.Points[segmentIdx].GetLatLon()
	to := road.Points[segmentIdx+1].GetLatLon()
	eta := geo.DistanceOnEarth(from, to) / kmhToMps(e.SpeedKmH(road))
	if purpose == datastructure.PurposeETA {
		return datastructure.NewRouteWeight(eta)
	}
	return datastructure.NewRouteWeight(eta * categoryWeightFactor[road.HighwayType.Category()])
}

func (e *EdgeEstimator) CalcOffroad(from, to datastructure.Coordinate, purpose datastructure.Purpose) datastructure.RouteWeight {
	return datastructure.NewRouteWeight(geo.DistanceOnEarth(from, to) / kmhToMps(e.offroadSpeedKmH))
}

func (e *EdgeEstimator) CalcHeuristic(from, to datastructure.Coordinate) datastructure.RouteWeight {
	return datastructure.NewRouteWeight(geo.DistanceOnEarth(from, to) / kmhToMps(e.maxSpeedKmH))
}

// CalcLeapWeight estimates a straight leap inside an mwm whose fastest road goes topSpeedKmH.
func (e *EdgeEstimator) CalcLeapWeight(from, to datastructure.Coordinate, topSpeedKmH float64) datastructure.RouteWeight {
	if topSpeedKmH <= 0 || topSpeedKmH > e.maxSpeedKmH {
		topSpeedKmH = e.maxSpeedKmH
	}
	return datastructure.NewRouteWeight(geo.DistanceOnEarth(from, to) / kmhToMps(topSpeedKmH))
}

// GetFerryLandingPenalty is charged when a route boards a ferry.
func (e *EdgeEstimator) GetFerryLandingPenalty(purpose datastructure.Purpose) float64 {
	return ferryLandingPenaltyS
}
