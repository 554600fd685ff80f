package routing

import (
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

// WorldGraph is the real weighted road graph the starter routes over.
type WorldGraph interface {
	GetEdgeList(vertexData datastructure.VertexData, isOutgoing, useRoutingOptions, useAccessConditional bool) []datastructure.SegmentEdge
	CalcSegmentWeight(segment datastructure.Segment, purpose datastructure.Purpose) datastructure.RouteWeight
	CalcOffroadWeight(from, to datastructure.Coordinate, purpose datastructure.Purpose) datastructure.RouteWeight
	CalculateETA(from, to datastructure.Segment) float64
	CalculateETAWithoutPenalty(segment datastructure.Segment) float64
	HeuristicCostEstimate(from, to datastructure.Coordinate) datastructure.RouteWeight

	GetJunction(segment datastructure.Segment, front bool) datastructure.LatLonWithAltitude
	IsOneWay(mwmID datastructure.NumMwmID, featureID uint32) bool
	IsPassThroughAllowed(mwmID datastructure.NumMwmID, featureID uint32) bool
	IsRoutingOptionsGood(segment datastructure.Segment) bool
	GetRoutingOptions(segment datastructure.Segment) datastructure.RoutingOptions
	GetHighwayType(segment datastructure.Segment) (datastructure.HighwayType, bool)

	// CheckLength rejects weights that are unreasonably large for the straight line distance.
	CheckLength(weight datastructure.RouteWeight, startToFinishDistanceM float64) bool

	GetMode() datastructure.WorldGraphMode
	SetMode(mode datastructure.WorldGraphMode)
	SetRegionsGraphMode(enabled bool)
}

// GuidesGraph holds user authored tracks. its segments live in GuidesNumMwmID.
type GuidesGraph interface {
	GetEdgeList(segment datastructure.Segment, isOutgoing bool, ingoingWeight datastructure.RouteWeight) []datastructure.SegmentEdge
	CalcSegmentWeight(segment datastructure.Segment) datastructure.RouteWeight
	GetJunction(segment datastructure.Segment, front bool) datastructure.LatLonWithAltitude
	GetFromTo(segment datastructure.Segment) (datastructure.LatLonWithAltitude, datastructure.LatLonWithAltitude)
}

// RegionsSparseGraph is the coarse offline fallback used when mwms are missing.
type RegionsSparseGraph interface {
	GetEdgeList(segment datastructure.Segment, isOutgoing bool, prevPoint datastructure.Coordinate) []datastructure.SegmentEdge
	CalcSegmentWeight(segment datastructure.Segment) datastructure.RouteWeight
	GetJunction(segment datastructure.Segment, front bool) datastructure.LatLonWithAltitude
}

// EndingGraph is what MakeFakeEnding needs from a road graph.
type EndingGraph interface {
	GetJunction(segment datastructure.Segment, front bool) datastructure.LatLonWithAltitude
	IsOneWay(mwmID datastructure.NumMwmID, featureID uint32) bool
}
