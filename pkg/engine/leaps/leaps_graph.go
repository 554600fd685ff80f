package leaps

import (
	"fmt"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

/*
LeapsGraph. coarse graph over mwm transitions.

	start ==> exits of start mwms --twin--> enter ==inner==> exit --twin--> ... enter ==> finish

start only has outgoing edges and finish only ingoing ones. as the forward search never asks
for ingoing edges, enters of finish mwms also get an outgoing edge to finish.
*/
type LeapsGraph struct {
	starter       Starter
	crossMwm      CrossMwmGraph
	penalty       CrossBorderPenalty
	startSegment  datastructure.Segment
	finishSegment datastructure.Segment
	startPoint    datastructure.Coordinate
	finishPoint   datastructure.Coordinate
}

func NewLeapsGraph(starter Starter, crossMwm CrossMwmGraph, penalty CrossBorderPenalty) *LeapsGraph {
	return &LeapsGraph{
		starter:       starter,
		crossMwm:      crossMwm,
		penalty:       penalty,
		startSegment:  starter.GetStartSegment(),
		finishSegment: starter.GetFinishSegment(),
		startPoint:    starter.GetPoint(starter.GetStartSegment(), true),
		finishPoint:   starter.GetPoint(starter.GetFinishSegment(), true),
	}
}

func (g *LeapsGraph) GetStartSegment() datastructure.Segment {
	return g.startSegment
}

func (g *LeapsGraph) GetFinishSegment() datastructure.Segment {
	return g.finishSegment
}

func (g *LeapsGraph) GetOutgoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge {
	return g.GetEdgesList(vertexData.Vertex, true)
}

func (g *LeapsGraph) GetIngoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge {
	return g.GetEdgesList(vertexData.Vertex, false)
}

func (g *LeapsGraph) GetEdgesList(segment datastructure.Segment, isOutgoing bool) []datastructure.SegmentEdge {
	if segment == g.startSegment {
		if !isOutgoing {
			panic("only the forward wave may get edges from start, the backward wave must stop at the first start edge")
		}
		return g.getEdgesListFromStart()
	}

	if segment == g.finishSegment {
		if isOutgoing {
			panic("only the backward wave may get edges to finish, the forward wave must stop at the first finish edge")
		}
		return g.getEdgesListToFinish()
	}

	if g.crossMwm.IsTransition(segment, isOutgoing) {
		var edges []datastructure.SegmentEdge
		for _, twin := range g.crossMwm.GetTwinsInner(segment, isOutgoing) {
			// the border is crossed along real road: the hop carries the weight of the reached segment.
			reached := segment
			if isOutgoing {
				reached = twin
			}
			weight := g.penalty.GetCrossBorderPenalty(segment.MwmID, twin.MwmID).
				Add(g.starter.CalcSegmentWeight(reached, datastructure.PurposeWeight))
			edges = append(edges, datastructure.NewSegmentEdge(twin, weight))
		}
		if isOutgoing {
			edges = append(edges, g.getEdgeToFinish(segment)...)
		}
		return edges
	}

	if !isOutgoing {
		return g.crossMwm.GetIngoingEdgeList(segment)
	}
	edges := g.crossMwm.GetOutgoingEdgeList(segment)
	return append(edges, g.getEdgeToFinish(segment)...)
}

func (g *LeapsGraph) getEdgesListFromStart() []datastructure.SegmentEdge {
	var edges []datastructure.SegmentEdge
	finish := g.starter.GetFinishEnding()
	for _, mwmID := range g.starter.GetStartEnding().GetMwmIDs() {
		for _, exit := range g.crossMwm.GetTransitions(mwmID, false) {
			exitFront := g.starter.GetPoint(exit, true)
			edges = append(edges, datastructure.NewSegmentEdge(exit, g.crossMwm.CalcLeapWeight(g.startPoint, exitFront, mwmID)))
		}
		if finish.HasMwm(mwmID) {
			edges = append(edges, datastructure.NewSegmentEdge(g.finishSegment,
				g.crossMwm.CalcLeapWeight(g.startPoint, g.finishPoint, mwmID)))
		}
	}
	return edges
}

func (g *LeapsGraph) getEdgesListToFinish() []datastructure.SegmentEdge {
	var edges []datastructure.SegmentEdge
	for _, mwmID := range g.starter.GetFinishEnding().GetMwmIDs() {
		for _, enter := range g.crossMwm.GetTransitions(mwmID, true) {
			enterFront := g.starter.GetPoint(enter, true)
			edges = append(edges, datastructure.NewSegmentEdge(enter, g.crossMwm.CalcLeapWeight(enterFront, g.finishPoint, mwmID)))
		}
	}
	return edges
}

// getEdgeToFinish connects an enter of a finish mwm with finish.
func (g *LeapsGraph) getEdgeToFinish(segment datastructure.Segment) []datastructure.SegmentEdge {
	if !g.starter.GetFinishEnding().HasMwm(segment.MwmID) || !g.crossMwm.IsTransition(segment, false) {
		return nil
	}
	front := g.starter.GetPoint(segment, true)
	return []datastructure.SegmentEdge{datastructure.NewSegmentEdge(g.finishSegment,
		g.crossMwm.CalcLeapWeight(front, g.finishPoint, segment.MwmID))}
}

// HeuristicCostEstimate is only defined towards start or finish.
func (g *LeapsGraph) HeuristicCostEstimate(from, to datastructure.Segment) datastructure.RouteWeight {
	if to != g.startSegment && to != g.finishSegment {
		panic(fmt.Sprintf("leaps heuristic is defined towards start or finish only, got %s", to))
	}
	toPoint := g.startPoint
	if to == g.finishSegment {
		toPoint = g.finishPoint
	}
	return g.starter.HeuristicCostEstimateToPoint(from, toPoint)
}

func (g *LeapsGraph) GetAStarWeightEpsilon() datastructure.RouteWeight {
	return g.starter.GetAStarWeightEpsilon()
}

func (g *LeapsGraph) GetPoint(segment datastructure.Segment, front bool) datastructure.Coordinate {
	return g.starter.GetPoint(segment, front)
}
