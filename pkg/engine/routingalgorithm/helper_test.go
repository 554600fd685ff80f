package routingalgorithm

import (
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

func seg(id uint32) datastructure.Segment {
	return datastructure.NewSegment(1, id, 0, true)
}

// testGraph holds weighted directed edges between segments. heuristic values come from h.
type testGraph struct {
	out map[datastructure.Segment][]datastructure.SegmentEdge
	in  map[datastructure.Segment][]datastructure.SegmentEdge
	h   map[datastructure.Segment]float64
	eps float64
}

func newTestGraph() *testGraph {
	return &testGraph{
		out: make(map[datastructure.Segment][]datastructure.SegmentEdge),
		in:  make(map[datastructure.Segment][]datastructure.SegmentEdge),
		h:   make(map[datastructure.Segment]float64),
	}
}

func (g *testGraph) addEdge(from, to uint32, weight float64) {
	w := datastructure.NewRouteWeight(weight)
	g.out[seg(from)] = append(g.out[seg(from)], datastructure.NewSegmentEdge(seg(to), w))
	g.in[seg(to)] = append(g.in[seg(to)], datastructure.NewSegmentEdge(seg(from), w))
}

func (g *testGraph) GetOutgoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge {
	return g.out[vertexData.Vertex]
}

func (g *testGraph) GetIngoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge {
	return g.in[vertexData.Vertex]
}

func (g *testGraph) HeuristicCostEstimate(from, to datastructure.Segment) datastructure.RouteWeight {
	return datastructure.NewRouteWeight(g.h[from])
}

func (g *testGraph) GetAStarWeightEpsilon() datastructure.RouteWeight {
	return datastructure.NewRouteWeight(g.eps)
}

/*
NewGraph.

	      4          1
	 0 ------> 1 ------> 3
	 |         ^         |
	 | 1       | 1       | 2
	 v         |         v
	 2 --------+         5 <--- 4 (unreachable from 0)
	 |                        ^
	 +------------ 10 --------+
*/
func NewGraph() *testGraph {
	g := newTestGraph()
	g.addEdge(0, 1, 4)
	g.addEdge(0, 2, 1)
	g.addEdge(2, 1, 1)
	g.addEdge(1, 3, 1)
	g.addEdge(3, 5, 2)
	g.addEdge(2, 4, 10)
	g.addEdge(4, 5, 1)
	g.addEdge(6, 0, 1)
	// admissible heuristic: lower bound to 5
	g.h[seg(0)] = 4
	g.h[seg(1)] = 3
	g.h[seg(2)] = 3
	g.h[seg(3)] = 2
	g.h[seg(4)] = 1
	return g
}
