package routing

import (
	"fmt"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"golang.org/x/exp/slices"
)

/*
FakeGraph. per request arena of fake segments.

fake segments are keyed by their index (Segment.SegmentIdx of a FakeNumMwmID segment).
vertices/vertexToID is a bijection, fakeToReal is only filled for PartOfReal vertices.
*/
type FakeGraph struct {
	vertices   map[uint32]FakeVertex
	vertexToID map[FakeVertex]uint32
	outgoing   map[uint32]map[uint32]struct{}
	ingoing    map[uint32]map[uint32]struct{}
	fakeToReal map[uint32]datastructure.Segment
	realToFake map[datastructure.Segment]map[uint32]struct{}
}

func NewFakeGraph() *FakeGraph {
	return &FakeGraph{
		vertices:   make(map[uint32]FakeVertex),
		vertexToID: make(map[FakeVertex]uint32),
		outgoing:   make(map[uint32]map[uint32]struct{}),
		ingoing:    make(map[uint32]map[uint32]struct{}),
		fakeToReal: make(map[uint32]datastructure.Segment),
		realToFake: make(map[datastructure.Segment]map[uint32]struct{}),
	}
}

func fakeID(segment datastructure.Segment) uint32 {
	if !segment.IsFakeCreated() {
		panic(fmt.Sprintf("%s is not a fake segment", segment))
	}
	return segment.SegmentIdx
}

func addToSet(sets map[uint32]map[uint32]struct{}, key, val uint32) {
	set, ok := sets[key]
	if !ok {
		set = make(map[uint32]struct{})
		sets[key] = set
	}
	set[val] = struct{}{}
}

func sortedSegments(set map[uint32]struct{}) []datastructure.Segment {
	ids := make([]uint32, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	segments := make([]datastructure.Segment, 0, len(ids))
	for _, id := range ids {
		segments = append(segments, datastructure.NewFakeSegment(id))
	}
	return segments
}

// AddStandaloneVertex registers vertex under segment without any edge.
func (g *FakeGraph) AddStandaloneVertex(segment datastructure.Segment, vertex FakeVertex) {
	id := fakeID(segment)
	g.vertices[id] = vertex
	g.vertexToID[vertex] = id
}

// AddVertex registers newSegment and connects it with existent.
// isOutgoing means existent -> newSegment, otherwise newSegment -> existent.
func (g *FakeGraph) AddVertex(existent, newSegment datastructure.Segment, vertex FakeVertex, isOutgoing,
	isPartOfReal bool, real datastructure.Segment) {
	g.AddStandaloneVertex(newSegment, vertex)

	from, to := fakeID(existent), fakeID(newSegment)
	if !isOutgoing {
		from, to = to, from
	}
	addToSet(g.outgoing, from, to)
	addToSet(g.ingoing, to, from)

	if isPartOfReal {
		id := fakeID(newSegment)
		g.fakeToReal[id] = real
		set, ok := g.realToFake[real]
		if !ok {
			set = make(map[uint32]struct{})
			g.realToFake[real] = set
		}
		set[id] = struct{}{}
	}
}

// AddConnection adds the fake edge from -> to between two registered vertices.
func (g *FakeGraph) AddConnection(from, to datastructure.Segment) {
	fromID, toID := fakeID(from), fakeID(to)
	if _, ok := g.vertices[fromID]; !ok {
		panic(fmt.Sprintf("unknown fake segment %s", from))
	}
	if _, ok := g.vertices[toID]; !ok {
		panic(fmt.Sprintf("unknown fake segment %s", to))
	}
	addToSet(g.outgoing, fromID, toID)
	addToSet(g.ingoing, toID, fromID)
}

// Append merges other in. fake ids of both graphs must not overlap.
func (g *FakeGraph) Append(other *FakeGraph) {
	for id, v := range other.vertices {
		if _, ok := g.vertices[id]; ok {
			panic(fmt.Sprintf("fake segment %d is already registered", id))
		}
		g.vertices[id] = v
		g.vertexToID[v] = id
	}
	for from, set := range other.outgoing {
		for to := range set {
			addToSet(g.outgoing, from, to)
		}
	}
	for to, set := range other.ingoing {
		for from := range set {
			addToSet(g.ingoing, to, from)
		}
	}
	for id, real := range other.fakeToReal {
		g.fakeToReal[id] = real
	}
	for real, set := range other.realToFake {
		dst, ok := g.realToFake[real]
		if !ok {
			dst = make(map[uint32]struct{}, len(set))
			g.realToFake[real] = dst
		}
		for id := range set {
			dst[id] = struct{}{}
		}
	}
}

// GetVertex panics on segments that were never registered.
func (g *FakeGraph) GetVertex(segment datastructure.Segment) FakeVertex {
	v, ok := g.vertices[fakeID(segment)]
	if !ok {
		panic(fmt.Sprintf("unknown fake segment %s", segment))
	}
	return v
}

// HasVertex reports whether segment is registered.
func (g *FakeGraph) HasVertex(segment datastructure.Segment) bool {
	if !segment.IsFakeCreated() {
		return false
	}
	_, ok := g.vertices[segment.SegmentIdx]
	return ok
}

// GetEdges returns the fake adjacency of segment in ascending id order.
func (g *FakeGraph) GetEdges(segment datastructure.Segment, isOutgoing bool) []datastructure.Segment {
	adj := g.ingoing
	if isOutgoing {
		adj = g.outgoing
	}
	set, ok := adj[fakeID(segment)]
	if !ok {
		return nil
	}
	return sortedSegments(set)
}

func (g *FakeGraph) GetSize() int {
	return len(g.vertices)
}

// GetFake returns the fake segments that are parts of real.
func (g *FakeGraph) GetFake(real datastructure.Segment) []datastructure.Segment {
	set, ok := g.realToFake[real]
	if !ok {
		return nil
	}
	return sortedSegments(set)
}

func (g *FakeGraph) FindReal(fake datastructure.Segment) (datastructure.Segment, bool) {
	if !fake.IsFakeCreated() {
		return datastructure.Segment{}, false
	}
	real, ok := g.fakeToReal[fake.SegmentIdx]
	return real, ok
}

func (g *FakeGraph) FindSegment(vertex FakeVertex) (datastructure.Segment, bool) {
	id, ok := g.vertexToID[vertex]
	if !ok {
		return datastructure.Segment{}, false
	}
	return datastructure.NewFakeSegment(id), true
}

// Segments lists every registered fake segment in ascending id order.
func (g *FakeGraph) Segments() []datastructure.Segment {
	set := make(map[uint32]struct{}, len(g.vertices))
	for id := range g.vertices {
		set[id] = struct{}{}
	}
	return sortedSegments(set)
}
