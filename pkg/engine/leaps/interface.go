package leaps

import (
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routing"
)

// CrossMwmGraph knows the transition segments on mwm borders and the weights between them.
// an exit is left towards another mwm, an enter is reached from another mwm.
type CrossMwmGraph interface {
	// IsTransition reports an exit for isOutgoing, an enter otherwise.
	IsTransition(segment datastructure.Segment, isOutgoing bool) bool
	// GetTwinsInner returns the transitions on the other side of the border.
	GetTwinsInner(segment datastructure.Segment, isOutgoing bool) []datastructure.Segment
	// GetOutgoingEdgeList lists the exits reachable from an enter inside its mwm.
	GetOutgoingEdgeList(segment datastructure.Segment) []datastructure.SegmentEdge
	// GetIngoingEdgeList lists the enters an exit is reachable from inside its mwm.
	GetIngoingEdgeList(segment datastructure.Segment) []datastructure.SegmentEdge
	GetWeightSure(from, to datastructure.Segment) datastructure.RouteWeight
	GetTransitions(mwmID datastructure.NumMwmID, isEnter bool) []datastructure.Segment
	CalcLeapWeight(from, to datastructure.Coordinate, mwmID datastructure.NumMwmID) datastructure.RouteWeight
}

// CrossBorderPenalty is charged when a leap crosses from one mwm into another.
type CrossBorderPenalty interface {
	GetCrossBorderPenalty(from, to datastructure.NumMwmID) datastructure.RouteWeight
}

// Starter is the part of the request graph the leaps graph needs.
type Starter interface {
	GetStartSegment() datastructure.Segment
	GetFinishSegment() datastructure.Segment
	GetStartEnding() routing.Ending
	GetFinishEnding() routing.Ending
	GetPoint(segment datastructure.Segment, front bool) datastructure.Coordinate
	CalcSegmentWeight(segment datastructure.Segment, purpose datastructure.Purpose) datastructure.RouteWeight
	HeuristicCostEstimateToPoint(from datastructure.Segment, to datastructure.Coordinate) datastructure.RouteWeight
	GetAStarWeightEpsilon() datastructure.RouteWeight
}

// PostProcessGraph is the segment graph a leaps path is cleaned against.
type PostProcessGraph interface {
	GetOutgoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge
	GetIngoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge
	CalcSegmentETA(segment datastructure.Segment) float64
}
