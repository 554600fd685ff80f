package leaps

import (
	"math"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routing"
)

func seg(mwm datastructure.NumMwmID, fid uint32) datastructure.Segment {
	return datastructure.NewSegment(mwm, fid, 0, true)
}

func pt(lon float64) datastructure.Coordinate {
	return datastructure.NewCoordinate(0, lon)
}

func ending(mwms ...datastructure.NumMwmID) routing.Ending {
	e := routing.NewEnding()
	for i, mwm := range mwms {
		e.AddReal(datastructure.NewSegment(mwm, uint32(1000+i), 0, true))
	}
	e.FillMwmIDs()
	return e
}

type testStarter struct {
	start, finish             datastructure.Segment
	startEnding, finishEnding routing.Ending
	points                    map[datastructure.Segment]datastructure.Coordinate
	weights                   map[datastructure.Segment]float64
}

func (s *testStarter) GetStartSegment() datastructure.Segment  { return s.start }
func (s *testStarter) GetFinishSegment() datastructure.Segment { return s.finish }
func (s *testStarter) GetStartEnding() routing.Ending          { return s.startEnding }
func (s *testStarter) GetFinishEnding() routing.Ending         { return s.finishEnding }

func (s *testStarter) GetPoint(segment datastructure.Segment, front bool) datastructure.Coordinate {
	return s.points[segment]
}

func (s *testStarter) CalcSegmentWeight(segment datastructure.Segment, purpose datastructure.Purpose) datastructure.RouteWeight {
	if w, ok := s.weights[segment]; ok {
		return datastructure.NewRouteWeight(w)
	}
	return datastructure.NewRouteWeight(1)
}

func (s *testStarter) HeuristicCostEstimateToPoint(from datastructure.Segment, to datastructure.Coordinate) datastructure.RouteWeight {
	return datastructure.ZeroRouteWeight()
}

func (s *testStarter) GetAStarWeightEpsilon() datastructure.RouteWeight {
	return datastructure.NewRouteWeight(1e-6)
}

type testCrossMwm struct {
	exits, enters map[datastructure.Segment][]datastructure.Segment
	innerOut      map[datastructure.Segment][]datastructure.SegmentEdge
	innerIn       map[datastructure.Segment][]datastructure.SegmentEdge
	points        map[datastructure.Segment]datastructure.Coordinate
}

func newTestCrossMwm(points map[datastructure.Segment]datastructure.Coordinate) *testCrossMwm {
	return &testCrossMwm{
		exits:    make(map[datastructure.Segment][]datastructure.Segment),
		enters:   make(map[datastructure.Segment][]datastructure.Segment),
		innerOut: make(map[datastructure.Segment][]datastructure.SegmentEdge),
		innerIn:  make(map[datastructure.Segment][]datastructure.SegmentEdge),
		points:   points,
	}
}

func (c *testCrossMwm) addTwins(exit, enter datastructure.Segment) {
	c.exits[exit] = append(c.exits[exit], enter)
	c.enters[enter] = append(c.enters[enter], exit)
}

func (c *testCrossMwm) addInner(enter, exit datastructure.Segment, weight float64) {
	w := datastructure.NewRouteWeight(weight)
	c.innerOut[enter] = append(c.innerOut[enter], datastructure.NewSegmentEdge(exit, w))
	c.innerIn[exit] = append(c.innerIn[exit], datastructure.NewSegmentEdge(enter, w))
}

func (c *testCrossMwm) IsTransition(segment datastructure.Segment, isOutgoing bool) bool {
	if isOutgoing {
		_, ok := c.exits[segment]
		return ok
	}
	_, ok := c.enters[segment]
	return ok
}

func (c *testCrossMwm) GetTwinsInner(segment datastructure.Segment, isOutgoing bool) []datastructure.Segment {
	if isOutgoing {
		return c.exits[segment]
	}
	return c.enters[segment]
}

func (c *testCrossMwm) GetOutgoingEdgeList(segment datastructure.Segment) []datastructure.SegmentEdge {
	return c.innerOut[segment]
}

func (c *testCrossMwm) GetIngoingEdgeList(segment datastructure.Segment) []datastructure.SegmentEdge {
	return c.innerIn[segment]
}

func (c *testCrossMwm) GetWeightSure(from, to datastructure.Segment) datastructure.RouteWeight {
	for _, e := range c.innerOut[from] {
		if e.Target == to {
			return e.Weight
		}
	}
	return datastructure.ZeroRouteWeight()
}

func (c *testCrossMwm) GetTransitions(mwmID datastructure.NumMwmID, isEnter bool) []datastructure.Segment {
	src := c.exits
	if isEnter {
		src = c.enters
	}
	var res []datastructure.Segment
	for s := range src {
		if s.MwmID == mwmID {
			res = append(res, s)
		}
	}
	return res
}

// CalcLeapWeight charges 1000 per degree of longitude.
func (c *testCrossMwm) CalcLeapWeight(from, to datastructure.Coordinate, mwmID datastructure.NumMwmID) datastructure.RouteWeight {
	return datastructure.NewRouteWeight(math.Abs(to.Lon-from.Lon) * 1000)
}

type testCountries map[datastructure.NumMwmID]uint64

func (c testCountries) GetCountryID(mwmID datastructure.NumMwmID) (uint64, bool) {
	id, ok := c[mwmID]
	return id, ok
}

// testSegmentGraph is a plain segment graph with per segment eta, 10 by default.
type testSegmentGraph struct {
	out map[datastructure.Segment][]datastructure.SegmentEdge
	in  map[datastructure.Segment][]datastructure.SegmentEdge
	eta map[datastructure.Segment]float64
}

func newTestSegmentGraph() *testSegmentGraph {
	return &testSegmentGraph{
		out: make(map[datastructure.Segment][]datastructure.SegmentEdge),
		in:  make(map[datastructure.Segment][]datastructure.SegmentEdge),
		eta: make(map[datastructure.Segment]float64),
	}
}

func (g *testSegmentGraph) addEdge(from, to uint32) {
	f, t := seg(1, from), seg(1, to)
	g.out[f] = append(g.out[f], datastructure.NewSegmentEdge(t, datastructure.NewRouteWeight(g.CalcSegmentETA(t))))
	g.in[t] = append(g.in[t], datastructure.NewSegmentEdge(f, datastructure.NewRouteWeight(g.CalcSegmentETA(t))))
}

func (g *testSegmentGraph) GetOutgoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge {
	return g.out[vertexData.Vertex]
}

func (g *testSegmentGraph) GetIngoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge {
	return g.in[vertexData.Vertex]
}

func (g *testSegmentGraph) CalcSegmentETA(segment datastructure.Segment) float64 {
	if eta, ok := g.eta[segment]; ok {
		return eta
	}
	return 10
}

func path(ids ...uint32) []datastructure.Segment {
	res := make([]datastructure.Segment, 0, len(ids))
	for _, id := range ids {
		res = append(res, seg(1, id))
	}
	return res
}

func pathETA(g *testSegmentGraph, p []datastructure.Segment) float64 {
	var sum float64
	for _, s := range p[1:] {
		sum += g.CalcSegmentETA(s)
	}
	return sum
}
