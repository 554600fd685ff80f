package routingalgorithm

import (
	"context"
	"errors"
	"fmt"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/util"
)

var (
	ErrNoPath    = errors.New("no path between start and finish")
	ErrCancelled = errors.New("path search cancelled")
)

// the context is polled once per this many settled vertices.
const cancelPollPeriod = 256

type Params struct {
	Start  datastructure.Segment
	Finish datastructure.Segment
	// CheckLength prunes edges whose accumulated weight is rejected. nil accepts every weight.
	CheckLength func(weight datastructure.RouteWeight) bool
}

type Result struct {
	Path     []datastructure.Segment
	Distance datastructure.RouteWeight
	// number of settled vertices
	Visited int
}

func pollCancelled(ctx context.Context, step int) error {
	if step%cancelPollPeriod != 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
	default:
		return nil
	}
}

func reconstructPath(parents map[datastructure.Segment]datastructure.Segment, start,
	finish datastructure.Segment) []datastructure.Segment {
	path := []datastructure.Segment{finish}
	for cur := finish; cur != start; {
		cur = parents[cur]
		path = append(path, cur)
	}
	return util.ReverseG(path)
}

// https://www.cs.princeton.edu/courses/archive/spr06/cos423/Handouts/GH05.pdf

// FindPath runs A* over graph. relaxations that improve a distance by no more than the graph
// epsilon are ignored, so quantization noise of the heuristic can not reopen vertices forever.
func FindPath(ctx context.Context, graph AStarGraph, params Params) (Result, error) {
	if params.Start == params.Finish {
		return Result{Path: []datastructure.Segment{params.Start}}, nil
	}

	epsilon := graph.GetAStarWeightEpsilon()
	pq := datastructure.NewMinHeap[datastructure.Segment]()

	dist := make(map[datastructure.Segment]datastructure.RouteWeight)
	parents := make(map[datastructure.Segment]datastructure.Segment)
	settled := make(map[datastructure.Segment]struct{})

	dist[params.Start] = datastructure.ZeroRouteWeight()
	pq.Insert(datastructure.NewPriorityQueueNode(
		graph.HeuristicCostEstimate(params.Start, params.Finish).GetIntegratedWeight(), params.Start))

	for step := 0; !pq.IsEmpty(); step++ {
		if err := pollCancelled(ctx, step); err != nil {
			return Result{Visited: len(settled)}, err
		}

		current, _ := pq.ExtractMin()
		cur := current.Item
		settled[cur] = struct{}{}

		if cur == params.Finish {
			return Result{
				Path:     reconstructPath(parents, params.Start, params.Finish),
				Distance: dist[cur],
				Visited:  len(settled),
			}, nil
		}

		curDist := dist[cur]
		for _, edge := range graph.GetOutgoingEdgesList(datastructure.NewVertexData(cur, curDist)) {
			to := edge.GetTarget()
			if to == cur {
				continue
			}
			if _, ok := settled[to]; ok {
				continue
			}

			newDist := curDist.Add(edge.GetWeight())
			if params.CheckLength != nil && !params.CheckLength(newDist) {
				continue
			}
			if old, ok := dist[to]; ok && !newDist.Add(epsilon).Less(old) {
				continue
			}

			dist[to] = newDist
			parents[to] = cur
			rank := newDist.Add(graph.HeuristicCostEstimate(to, params.Finish)).GetIntegratedWeight()
			pq.Insert(datastructure.NewPriorityQueueNode(rank, to))
		}
	}

	return Result{Visited: len(settled)}, ErrNoPath
}

// ShortestPathTree runs dijkstra from start over outgoing edges. expand decides whether a
// settled vertex is expanded further, nil expands everything.
func ShortestPathTree(ctx context.Context, graph EdgeGraph, start datastructure.Segment,
	expand func(datastructure.Segment) bool) (map[datastructure.Segment]datastructure.RouteWeight, error) {
	pq := datastructure.NewMinHeap[datastructure.Segment]()
	dist := map[datastructure.Segment]datastructure.RouteWeight{start: datastructure.ZeroRouteWeight()}
	settled := make(map[datastructure.Segment]datastructure.RouteWeight)

	pq.Insert(datastructure.NewPriorityQueueNode(0.0, start))
	for step := 0; !pq.IsEmpty(); step++ {
		if err := pollCancelled(ctx, step); err != nil {
			return nil, err
		}
		current, _ := pq.ExtractMin()
		cur := current.Item
		curDist := dist[cur]
		settled[cur] = curDist

		if expand != nil && cur != start && !expand(cur) {
			continue
		}

		for _, edge := range graph.GetOutgoingEdgesList(datastructure.NewVertexData(cur, curDist)) {
			to := edge.GetTarget()
			if _, ok := settled[to]; ok {
				continue
			}
			newDist := curDist.Add(edge.GetWeight())
			if old, ok := dist[to]; ok && !newDist.Less(old) {
				continue
			}
			dist[to] = newDist
			pq.Insert(datastructure.NewPriorityQueueNode(newDist.GetIntegratedWeight(), to))
		}
	}
	return settled, nil
}
