package routingalgorithm

import "github.com/organicmaps/organicmaps-sub003/pkg/datastructure"

type EdgeGraph interface {
	GetOutgoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge
	GetIngoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge
}

type AStarGraph interface {
	EdgeGraph
	HeuristicCostEstimate(from, to datastructure.Segment) datastructure.RouteWeight
	GetAStarWeightEpsilon() datastructure.RouteWeight
}
