package routingalgorithm

import (
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/util"
)

type BFSState struct {
	Vertex datastructure.Segment
	Parent datastructure.Segment
}

// BFS is a breadth first search that remembers the parent of every accepted vertex.
type BFS struct {
	graph   EdgeGraph
	parents map[datastructure.Segment]datastructure.Segment
}

func NewBFS(graph EdgeGraph) *BFS {
	return &BFS{
		graph:   graph,
		parents: make(map[datastructure.Segment]datastructure.Segment),
	}
}

// Run walks outgoing or ingoing edges from start. a vertex is expanded only when onVisit
// accepts it, rejected vertices may be reached again through another parent.
func (b *BFS) Run(start datastructure.Segment, isOutgoing bool, onVisit func(state BFSState) bool) {
	b.parents = make(map[datastructure.Segment]datastructure.Segment)

	seen := map[datastructure.Segment]struct{}{start: {}}
	queue := []datastructure.Segment{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		vertexData := datastructure.NewVertexData(cur, datastructure.ZeroRouteWeight())
		var edges []datastructure.SegmentEdge
		if isOutgoing {
			edges = b.graph.GetOutgoingEdgesList(vertexData)
		} else {
			edges = b.graph.GetIngoingEdgesList(vertexData)
		}

		for _, edge := range edges {
			to := edge.GetTarget()
			if _, ok := seen[to]; ok {
				continue
			}
			if !onVisit(BFSState{Vertex: to, Parent: cur}) {
				continue
			}
			seen[to] = struct{}{}
			b.parents[to] = cur
			queue = append(queue, to)
		}
	}
}

// ReconstructPath returns from, its parent, ... up to the start of the last Run.
// reverse flips it to start first.
func (b *BFS) ReconstructPath(from datastructure.Segment, reverse bool) []datastructure.Segment {
	path := []datastructure.Segment{from}
	for {
		parent, ok := b.parents[from]
		if !ok {
			break
		}
		path = append(path, parent)
		from = parent
	}
	if reverse {
		return util.ReverseG(path)
	}
	return path
}
