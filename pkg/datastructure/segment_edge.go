package datastructure

// SegmentEdge is a hop to Target. for outgoing lists the weight is the weight of Target,
// for ingoing lists it is the weight of the segment the list was requested for.
type SegmentEdge struct {
	Target Segment     `json:"target"`
	Weight RouteWeight `json:"weight"`
}

func NewSegmentEdge(target Segment, weight RouteWeight) SegmentEdge {
	return SegmentEdge{
		Target: target,
		Weight: weight,
	}
}

func (e SegmentEdge) GetTarget() Segment {
	return e.Target
}

func (e SegmentEdge) GetWeight() RouteWeight {
	return e.Weight
}

// VertexData is what a search driver knows about the vertex it expands.
type VertexData struct {
	Vertex       Segment
	RealDistance RouteWeight
}

func NewVertexData(vertex Segment, realDistance RouteWeight) VertexData {
	return VertexData{
		Vertex:       vertex,
		RealDistance: realDistance,
	}
}
