package routing

import (
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/geo"
)

const (
	testMwm          datastructure.NumMwmID = 1
	testSpeedMPS                            = 10.0
	testOffroadSpeed                        = 1.0
)

type testRoad struct {
	points      []datastructure.LatLonWithAltitude
	oneWay      bool
	passThrough bool
	hwType      datastructure.HighwayType
}

// testGraph is a tiny world graph: every road point is a joint shared by roads with equal points.
type testGraph struct {
	roads        map[uint32]testRoad
	mode         datastructure.WorldGraphMode
	lengthFactor float64
	regionsMode  bool
}

func newTestGraph() *testGraph {
	return &testGraph{roads: make(map[uint32]testRoad), mode: datastructure.ModeNoLeaps}
}

func pt(lat, lon float64) datastructure.LatLonWithAltitude {
	return datastructure.NewLatLonWithAltitude(lat, lon, 0)
}

func (g *testGraph) addRoad(featureID uint32, oneWay, passThrough bool, points ...datastructure.LatLonWithAltitude) {
	g.roads[featureID] = testRoad{points: points, oneWay: oneWay, passThrough: passThrough,
		hwType: datastructure.HighwayResidential}
}

func (g *testGraph) segments() []datastructure.Segment {
	var segments []datastructure.Segment
	for fid, r := range g.roads {
		for i := 0; i+1 < len(r.points); i++ {
			segments = append(segments, datastructure.NewSegment(testMwm, fid, uint32(i), true))
			if !r.oneWay {
				segments = append(segments, datastructure.NewSegment(testMwm, fid, uint32(i), false))
			}
		}
	}
	return segments
}

func (g *testGraph) GetJunction(segment datastructure.Segment, front bool) datastructure.LatLonWithAltitude {
	r := g.roads[segment.FeatureID]
	idx := int(segment.SegmentIdx)
	if segment.Forward == front {
		return r.points[idx+1]
	}
	return r.points[idx]
}

func (g *testGraph) GetEdgeList(vertexData datastructure.VertexData, isOutgoing, useRoutingOptions,
	useAccessConditional bool) []datastructure.SegmentEdge {
	segment := vertexData.Vertex
	var edges []datastructure.SegmentEdge
	for _, s := range g.segments() {
		if s == segment.GetReversed() {
			continue
		}
		if isOutgoing && g.GetJunction(s, false) == g.GetJunction(segment, true) {
			edges = append(edges, datastructure.NewSegmentEdge(s, g.transition(segment, s).Add(
				g.CalcSegmentWeight(s, datastructure.PurposeWeight))))
		}
		if !isOutgoing && g.GetJunction(s, true) == g.GetJunction(segment, false) {
			edges = append(edges, datastructure.NewSegmentEdge(s, g.transition(s, segment).Add(
				g.CalcSegmentWeight(segment, datastructure.PurposeWeight))))
		}
	}
	return edges
}

func (g *testGraph) transition(from, to datastructure.Segment) datastructure.RouteWeight {
	if g.roads[from.FeatureID].passThrough != g.roads[to.FeatureID].passThrough {
		return datastructure.NewRouteWeightFull(0, 1, 0, 0, 0)
	}
	return datastructure.ZeroRouteWeight()
}

func (g *testGraph) CalcSegmentWeight(segment datastructure.Segment, purpose datastructure.Purpose) datastructure.RouteWeight {
	d := geo.DistanceOnEarth(g.GetJunction(segment, false).GetLatLon(), g.GetJunction(segment, true).GetLatLon())
	return datastructure.NewRouteWeight(d / testSpeedMPS)
}

func (g *testGraph) CalcOffroadWeight(from, to datastructure.Coordinate, purpose datastructure.Purpose) datastructure.RouteWeight {
	return datastructure.NewRouteWeight(geo.DistanceOnEarth(from, to) / testOffroadSpeed)
}

func (g *testGraph) CalculateETA(from, to datastructure.Segment) float64 {
	return g.CalcSegmentWeight(to, datastructure.PurposeETA).GetWeight()
}

func (g *testGraph) CalculateETAWithoutPenalty(segment datastructure.Segment) float64 {
	return g.CalcSegmentWeight(segment, datastructure.PurposeETA).GetWeight()
}

func (g *testGraph) HeuristicCostEstimate(from, to datastructure.Coordinate) datastructure.RouteWeight {
	return datastructure.NewRouteWeight(geo.DistanceOnEarth(from, to) / testSpeedMPS)
}

func (g *testGraph) IsOneWay(mwmID datastructure.NumMwmID, featureID uint32) bool {
	return g.roads[featureID].oneWay
}

func (g *testGraph) IsPassThroughAllowed(mwmID datastructure.NumMwmID, featureID uint32) bool {
	return g.roads[featureID].passThrough
}

func (g *testGraph) IsRoutingOptionsGood(segment datastructure.Segment) bool {
	return true
}

func (g *testGraph) GetRoutingOptions(segment datastructure.Segment) datastructure.RoutingOptions {
	return datastructure.RoadUsual
}

func (g *testGraph) GetHighwayType(segment datastructure.Segment) (datastructure.HighwayType, bool) {
	r, ok := g.roads[segment.FeatureID]
	return r.hwType, ok
}

func (g *testGraph) CheckLength(weight datastructure.RouteWeight, startToFinishDistanceM float64) bool {
	return g.lengthFactor == 0 || weight.GetWeight() <= g.lengthFactor*startToFinishDistanceM/testSpeedMPS
}

func (g *testGraph) GetMode() datastructure.WorldGraphMode {
	return g.mode
}

func (g *testGraph) SetMode(mode datastructure.WorldGraphMode) {
	g.mode = mode
}

func (g *testGraph) SetRegionsGraphMode(enabled bool) {
	g.regionsMode = enabled
}

func targets(edges []datastructure.SegmentEdge) []datastructure.Segment {
	res := make([]datastructure.Segment, 0, len(edges))
	for _, e := range edges {
		res = append(res, e.GetTarget())
	}
	return res
}

func fake(id uint32) datastructure.Segment {
	return datastructure.NewFakeSegment(id)
}

func outgoing(s *IndexGraphStarter, segment datastructure.Segment) []datastructure.Segment {
	return targets(s.GetEdgesList(datastructure.NewVertexData(segment, datastructure.ZeroRouteWeight()), true, false))
}

func ingoing(s *IndexGraphStarter, segment datastructure.Segment) []datastructure.Segment {
	return targets(s.GetEdgesList(datastructure.NewVertexData(segment, datastructure.ZeroRouteWeight()), false, false))
}
