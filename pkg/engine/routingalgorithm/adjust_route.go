package routingalgorithm

import (
	"context"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

type AdjustParams struct {
	Start datastructure.Segment
	// PrevRoute is the previous route, every edge targets one step and weighs that step.
	PrevRoute []datastructure.SegmentEdge
	// CheckLength bounds the wave from Start. nil accepts every weight.
	CheckLength func(weight datastructure.RouteWeight) bool
}

/*
AdjustRoute grows a dijkstra wave from params.Start and joins it onto the previous route.

	start ~~~~> step i ==> step i+1 ==> ... ==> last step

the join step is the one minimizing the wave distance to it plus the weight of the steps after
it. the returned path is the wave path to the join step followed by the rest of the previous
route, Distance is the weight of the whole path.
*/
func AdjustRoute(ctx context.Context, graph EdgeGraph, params AdjustParams) (Result, error) {
	if len(params.PrevRoute) == 0 {
		return Result{}, ErrNoPath
	}

	// weight of the previous route after each step. the earliest occurrence of a step wins.
	remaining := make(map[datastructure.Segment]datastructure.RouteWeight, len(params.PrevRoute))
	acc := datastructure.ZeroRouteWeight()
	for i := len(params.PrevRoute) - 1; i >= 0; i-- {
		remaining[params.PrevRoute[i].GetTarget()] = acc
		acc = acc.Add(params.PrevRoute[i].GetWeight())
	}

	pq := datastructure.NewMinHeap[datastructure.Segment]()
	dist := map[datastructure.Segment]datastructure.RouteWeight{params.Start: datastructure.ZeroRouteWeight()}
	parents := make(map[datastructure.Segment]datastructure.Segment)
	settled := make(map[datastructure.Segment]struct{})

	var (
		joined   bool
		join     datastructure.Segment
		joinDist datastructure.RouteWeight
	)

	pq.Insert(datastructure.NewPriorityQueueNode(0.0, params.Start))
	for step := 0; !pq.IsEmpty(); step++ {
		if err := pollCancelled(ctx, step); err != nil {
			return Result{Visited: len(settled)}, err
		}

		current, _ := pq.ExtractMin()
		cur := current.Item
		curDist := dist[cur]
		settled[cur] = struct{}{}

		if rest, ok := remaining[cur]; ok {
			if full := curDist.Add(rest); !joined || full.Less(joinDist) {
				joined, join, joinDist = true, cur, full
			}
		}

		for _, edge := range graph.GetOutgoingEdgesList(datastructure.NewVertexData(cur, curDist)) {
			to := edge.GetTarget()
			if _, ok := settled[to]; ok {
				continue
			}
			newDist := curDist.Add(edge.GetWeight())
			if params.CheckLength != nil && !params.CheckLength(newDist) {
				continue
			}
			if old, ok := dist[to]; ok && !newDist.Less(old) {
				continue
			}
			dist[to] = newDist
			parents[to] = cur
			pq.Insert(datastructure.NewPriorityQueueNode(newDist.GetIntegratedWeight(), to))
		}
	}

	if !joined {
		return Result{Visited: len(settled)}, ErrNoPath
	}

	path := reconstructPath(parents, params.Start, join)
	for i, edge := range params.PrevRoute {
		if edge.GetTarget() != join {
			continue
		}
		for _, rest := range params.PrevRoute[i+1:] {
			path = append(path, rest.GetTarget())
		}
		break
	}
	return Result{Path: path, Distance: joinDist, Visited: len(settled)}, nil
}
