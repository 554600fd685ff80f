package leaps

import (
	"golang.org/x/exp/slices"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routingalgorithm"
)

const (
	// DefaultMaxStep bounds how far back an ingoing wave goes from every path segment.
	DefaultMaxStep = 5
	// intervals that win no more than this many seconds are left as they are.
	weightEpsS = 1.0
)

type pathInterval struct {
	winWeight float64
	left      int
	right     int
	path      []datastructure.Segment
}

func (p pathInterval) intersects(o pathInterval) bool {
	return p.left <= o.right && o.left <= p.right
}

type segmentData struct {
	steps      int
	summaryETA float64
}

/*
LeapsPostProcessor. removes local detours from a path stitched out of leaps.

a leaps path is refined mwm by mwm, so near the borders it may overshoot and come back:

	      2 --> 3
	      ^     |
	      |     v
	0 --> 1 --> 4 --> 5      [0 1 2 3 4 5]  ==>  [0 1 4 5]

for every path segment a short ingoing wave is run. when it reaches an earlier segment of the
path faster than the path itself does, the piece in between is replaced. replaced pieces never
overlap, the biggest wins are taken first.
*/
type LeapsPostProcessor struct {
	path           []datastructure.Segment
	graph          PostProcessGraph
	bfs            *routingalgorithm.BFS
	maxStep        int
	prefixSumETA   []float64
	segmentToIndex map[datastructure.Segment]int
}

func NewLeapsPostProcessor(path []datastructure.Segment, graph PostProcessGraph, maxStep int) *LeapsPostProcessor {
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	p := &LeapsPostProcessor{
		path:           path,
		graph:          graph,
		bfs:            routingalgorithm.NewBFS(graph),
		maxStep:        maxStep,
		prefixSumETA:   make([]float64, len(path)),
		segmentToIndex: make(map[datastructure.Segment]int, len(path)),
	}
	for i := 1; i < len(path); i++ {
		p.prefixSumETA[i] = p.prefixSumETA[i-1] + graph.CalcSegmentETA(path[i])
		if _, ok := p.segmentToIndex[path[i]]; !ok {
			p.segmentToIndex[path[i]] = i
		}
	}
	return p
}

func (p *LeapsPostProcessor) GetProcessedPath() []datastructure.Segment {
	candidates := p.calculateIntervalsToRelax()
	slices.SortFunc(candidates, func(a, b pathInterval) int {
		switch {
		case a.winWeight > b.winWeight:
			return -1
		case a.winWeight < b.winWeight:
			return 1
		case a.left != b.left:
			return a.left - b.left
		default:
			return a.right - b.right
		}
	})

	accepted := make([]pathInterval, 0, len(candidates))
	for _, candidate := range candidates {
		ok := true
		for _, interval := range accepted {
			if candidate.intersects(interval) {
				ok = false
				break
			}
		}
		if ok {
			accepted = append(accepted, candidate)
		}
	}
	slices.SortFunc(accepted, func(a, b pathInterval) int {
		return a.left - b.left
	})

	output := make([]datastructure.Segment, 0, len(p.path))
	prev := 0
	for _, interval := range accepted {
		output = append(output, p.path[prev:interval.left]...)
		output = append(output, interval.path...)
		prev = interval.right + 1
	}
	return append(output, p.path[prev:]...)
}

func (p *LeapsPostProcessor) calculateIntervalsToRelax() []pathInterval {
	var result []pathInterval
	for right := 2; right < len(p.path); right++ {
		segment := p.path[right]
		data := p.fillIngoingPaths(segment)

		for visited, cur := range data {
			left, ok := p.segmentToIndex[visited]
			if !ok || left >= right || left == 0 {
				continue
			}
			prevWeight := p.prefixSumETA[right] - p.prefixSumETA[left-1]
			if prevWeight-weightEpsS <= cur.summaryETA {
				continue
			}
			result = append(result, pathInterval{
				winWeight: prevWeight - cur.summaryETA,
				left:      left,
				right:     right,
				path:      p.bfs.ReconstructPath(visited, false),
			})
		}
	}
	return result
}

func (p *LeapsPostProcessor) fillIngoingPaths(start datastructure.Segment) map[datastructure.Segment]segmentData {
	data := map[datastructure.Segment]segmentData{
		start: {steps: 0, summaryETA: p.graph.CalcSegmentETA(start)},
	}
	p.bfs.Run(start, false, func(state routingalgorithm.BFSState) bool {
		if _, ok := data[state.Vertex]; ok {
			return false
		}
		parent := data[state.Parent]
		if parent.steps >= p.maxStep {
			return false
		}
		data[state.Vertex] = segmentData{
			steps:      parent.steps + 1,
			summaryETA: parent.summaryETA + p.graph.CalcSegmentETA(state.Vertex),
		}
		return true
	})
	return data
}
