package roadgraph

import (
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/geo"
)

type GraphOptions struct {
	// Avoid lists road kinds that routing options filter out.
	Avoid datastructure.RoutingOptions
	// LengthFactor bounds a route weight by LengthFactor times the straight line time. 0 disables the check.
	LengthFactor float64
}

/*
Graph. weighted segment graph over a RoadIndex.

Graph keeps the per request state (mode, routing options) and is cheap to create,
the index underneath is shared between requests.

outgoing edges of a segment lead to every segment leaving its front point except its own
reverse. the edge weight is the weight of the target plus the transition penalties.
*/
type Graph struct {
	index       *RoadIndex
	estimator   *EdgeEstimator
	options     GraphOptions
	mode        datastructure.WorldGraphMode
	regionsMode bool
}

func NewGraph(index *RoadIndex, estimator *EdgeEstimator, options GraphOptions) *Graph {
	return &Graph{
		index:     index,
		estimator: estimator,
		options:   options,
		mode:      datastructure.ModeNoLeaps,
	}
}

func (g *Graph) GetIndex() *RoadIndex {
	return g.index
}

func (g *Graph) GetEstimator() *EdgeEstimator {
	return g.estimator
}

func (g *Graph) GetEdgeList(vertexData datastructure.VertexData, isOutgoing, useRoutingOptions,
	useAccessConditional bool) []datastructure.SegmentEdge {
	segment := vertexData.Vertex
	road := g.index.mustRoad(segment)

	// junction the edges meet at: the front of segment for outgoing edges, its back for ingoing ones.
	pointIdx := frontPointIdx(segment)
	if !isOutgoing {
		pointIdx = backPointIdx(segment)
	}

	var edges []datastructure.SegmentEdge
	for _, rp := range g.index.GetJoint(road.NodeIDs[pointIdx]) {
		other, ok := g.index.GetRoad(rp.MwmID, rp.FeatureID)
		if !ok {
			continue
		}
		for _, target := range adjacentSegments(other, rp.PointIdx, isOutgoing) {
			if target == segment.GetReversed() || target == segment {
				continue
			}
			if useRoutingOptions && !g.IsRoutingOptionsGood(target) {
				continue
			}

			var weight datastructure.RouteWeight
			if isOutgoing {
				weight = g.calcTransitionWeight(road, other).Add(g.calcSegmentWeight(other, target, useAccessConditional))
			} else {
				weight = g.calcTransitionWeight(other, road).Add(g.calcSegmentWeight(road, segment, useAccessConditional))
			}
			edges = append(edges, datastructure.NewSegmentEdge(target, weight))
		}
	}
	return edges
}

// adjacentSegments lists segments of road leaving pointIdx (outgoing) or arriving at it (ingoing).
func adjacentSegments(road *Road, pointIdx int, isOutgoing bool) []datastructure.Segment {
	var res []datastructure.Segment
	last := road.GetPointsCount() - 1
	if isOutgoing {
		if pointIdx < last {
			res = append(res, datastructure.NewSegment(road.MwmID, road.FeatureID, uint32(pointIdx), true))
		}
		if pointIdx > 0 && !road.OneWay {
			res = append(res, datastructure.NewSegment(road.MwmID, road.FeatureID, uint32(pointIdx-1), false))
		}
		return res
	}
	if pointIdx > 0 {
		res = append(res, datastructure.NewSegment(road.MwmID, road.FeatureID, uint32(pointIdx-1), true))
	}
	if pointIdx < last && !road.OneWay {
		res = append(res, datastructure.NewSegment(road.MwmID, road.FeatureID, uint32(pointIdx), false))
	}
	return res
}

func frontPointIdx(segment datastructure.Segment) int {
	if segment.Forward {
		return int(segment.SegmentIdx) + 1
	}
	return int(segment.SegmentIdx)
}

func backPointIdx(segment datastructure.Segment) int {
	if segment.Forward {
		return int(segment.SegmentIdx)
	}
	return int(segment.SegmentIdx) + 1
}

func (g *Graph) calcTransitionWeight(from, to *Road) datastructure.RouteWeight {
	weight := datastructure.ZeroRouteWeight()
	if from.PassThroughAllowed != to.PassThroughAllowed {
		weight = weight.Add(datastructure.NewRouteWeightFull(0, 1, 0, 0, 0))
	}
	if to.HighwayType == datastructure.RouteFerry && from.HighwayType != datastructure.RouteFerry {
		weight = weight.Add(datastructure.NewRouteWeight(g.estimator.GetFerryLandingPenalty(datastructure.PurposeWeight)))
	}
	return weight
}

func (g *Graph) calcSegmentWeight(road *Road, segment datastructure.Segment, useAccessConditional bool) datastructure.RouteWeight {
	weight := g.estimator.CalcSegmentWeight(road, segment.SegmentIdx, datastructure.PurposeWeight)
	if useAccessConditional && road.AccessConditional {
		weight = weight.Add(datastructure.NewRouteWeightFull(0, 0, 0, 1, 0))
	}
	return weight
}

func (g *Graph) CalcSegmentWeight(segment datastructure.Segment, purpose datastructure.Purpose) datastructure.RouteWeight {
	return g.estimator.CalcSegmentWeight(g.index.mustRoad(segment), segment.SegmentIdx, purpose)
}

func (g *Graph) CalcOffroadWeight(from, to datastructure.Coordinate, purpose datastructure.Purpose) datastructure.RouteWeight {
	return g.estimator.CalcOffroad(from, to, purpose)
}

// CalcLeapWeight estimates going from one point of mwmID to another.
func (g *Graph) CalcLeapWeight(from, to datastructure.Coordinate, mwmID datastructure.NumMwmID) datastructure.RouteWeight {
	return g.estimator.CalcLeapWeight(from, to, g.index.GetMwmTopSpeedKmH(mwmID))
}

func (g *Graph) CalculateETA(from, to datastructure.Segment) float64 {
	eta := g.CalcSegmentWeight(to, datastructure.PurposeETA).GetWeight()
	fromRoad, toRoad := g.index.mustRoad(from), g.index.mustRoad(to)
	if toRoad.HighwayType == datastructure.RouteFerry && fromRoad.HighwayType != datastructure.RouteFerry {
		eta += g.estimator.GetFerryLandingPenalty(datastructure.PurposeETA)
	}
	return eta
}

func (g *Graph) CalculateETAWithoutPenalty(segment datastructure.Segment) float64 {
	return g.CalcSegmentWeight(segment, datastructure.PurposeETA).GetWeight()
}

func (g *Graph) HeuristicCostEstimate(from, to datastructure.Coordinate) datastructure.RouteWeight {
	return g.estimator.CalcHeuristic(from, to)
}

func (g *Graph) GetJunction(segment datastructure.Segment, front bool) datastructure.LatLonWithAltitude {
	road := g.index.mustRoad(segment)
	if front {
		return road.Points[frontPointIdx(segment)]
	}
	return road.Points[backPointIdx(segment)]
}

func (g *Graph) GetPoint(segment datastructure.Segment, front bool) datastructure.Coordinate {
	return g.GetJunction(segment, front).GetLatLon()
}

func (g *Graph) IsOneWay(mwmID datastructure.NumMwmID, featureID uint32) bool {
	road, ok := g.index.GetRoad(mwmID, featureID)
	return ok && road.OneWay
}

func (g *Graph) IsPassThroughAllowed(mwmID datastructure.NumMwmID, featureID uint32) bool {
	road, ok := g.index.GetRoad(mwmID, featureID)
	return ok && road.PassThroughAllowed
}

func (g *Graph) IsRoutingOptionsGood(segment datastructure.Segment) bool {
	return g.GetRoutingOptions(segment)&g.options.Avoid == 0
}

func (g *Graph) GetRoutingOptions(segment datastructure.Segment) datastructure.RoutingOptions {
	road, ok := g.index.GetRoad(segment.MwmID, segment.FeatureID)
	if !ok {
		return datastructure.RoadUsual
	}
	return road.Options
}

func (g *Graph) GetHighwayType(segment datastructure.Segment) (datastructure.HighwayType, bool) {
	road, ok := g.index.GetRoad(segment.MwmID, segment.FeatureID)
	if !ok {
		return datastructure.HighwayUnknown, false
	}
	return road.HighwayType, true
}

func (g *Graph) CheckLength(weight datastructure.RouteWeight, startToFinishDistanceM float64) bool {
	if g.options.LengthFactor <= 0 {
		return true
	}
	straight := startToFinishDistanceM / kmhToMps(g.estimator.GetMaxSpeedKmH())
	return weight.GetWeight() <= g.options.LengthFactor*straight
}

func (g *Graph) GetMode() datastructure.WorldGraphMode {
	return g.mode
}

func (g *Graph) SetMode(mode datastructure.WorldGraphMode) {
	g.mode = mode
}

func (g *Graph) SetRegionsGraphMode(enabled bool) {
	g.regionsMode = enabled
}

func (g *Graph) IsRegionsGraphMode() bool {
	return g.regionsMode
}

// GetSegmentLengthM is the geodesic length of segment.
func (g *Graph) GetSegmentLengthM(segment datastructure.Segment) float64 {
	return geo.DistanceOnEarth(g.GetPoint(segment, false), g.GetPoint(segment, true))
}

// GetOutgoingEdgesList lets search drivers walk the plain road graph, without routing options.
func (g *Graph) GetOutgoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge {
	return g.GetEdgeList(vertexData, true, false, false)
}

func (g *Graph) GetIngoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge {
	return g.GetEdgeList(vertexData, false, false, false)
}
