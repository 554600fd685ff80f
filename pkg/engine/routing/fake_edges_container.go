package routing

import (
	"errors"
	"fmt"
	"math"

	"github.com/kelindar/binary"
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"golang.org/x/exp/slices"
)

var ErrInvalidFakeEdges = errors.New("invalid fake edges snapshot")

// FakeEdgesContainer carries the finish and the fake graph of a computed subroute over to the
// starter of the whole route.
type FakeEdgesContainer struct {
	finish Ending
	fake   *FakeGraph
}

// NewFakeEdgesContainer takes over the fake state of starter, which must not be used afterwards.
func NewFakeEdgesContainer(starter *IndexGraphStarter) *FakeEdgesContainer {
	c := &FakeEdgesContainer{
		finish: starter.finish,
		fake:   starter.fake,
	}
	starter.fake = NewFakeGraph()
	starter.finish = NewEnding()
	return c
}

func (c *FakeEdgesContainer) GetNumFakeEdges() uint32 {
	return uint32(c.fake.GetSize())
}

func (c *FakeEdgesContainer) GetFinish() Ending {
	return c.finish
}

// GetFakeNumerationEnd is one past the largest fake segment id in the container. a starter that
// appends the container must number its own fake segments from here.
func (c *FakeEdgesContainer) GetFakeNumerationEnd() uint32 {
	end := c.finish.ID + 1
	for _, segment := range c.fake.Segments() {
		if segment.SegmentIdx+1 > end {
			end = segment.SegmentIdx + 1
		}
	}
	return end
}

func (c *FakeEdgesContainer) HasFakeSegment(segment datastructure.Segment) bool {
	return c.fake.HasVertex(segment)
}

// GetRealSegments lists the real segments the container refers to, parts of real and finish
// projections, in ascending order.
func (c *FakeEdgesContainer) GetRealSegments() []datastructure.Segment {
	set := make(map[datastructure.Segment]struct{})
	for _, real := range c.fake.fakeToReal {
		set[real] = struct{}{}
	}
	for real := range c.finish.Real {
		set[real] = struct{}{}
	}
	res := make([]datastructure.Segment, 0, len(set))
	for real := range set {
		res = append(res, real)
	}
	slices.SortFunc(res, func(a, b datastructure.Segment) int { return a.Compare(b) })
	return res
}

type fakeVertexRecord struct {
	ID     uint32
	Vertex FakeVertex
}

type fakeEdgeRecord struct {
	From uint32
	To   uint32
}

type fakeRealRecord struct {
	ID   uint32
	Real datastructure.Segment
}

type fakeEdgesSnapshot struct {
	FinishID   uint32
	FinishMwms []datastructure.NumMwmID
	FinishReal []datastructure.Segment
	Vertices   []fakeVertexRecord
	Edges      []fakeEdgeRecord
	Reals      []fakeRealRecord
}

func (c *FakeEdgesContainer) snapshot() fakeEdgesSnapshot {
	snap := fakeEdgesSnapshot{
		FinishID:   c.finish.ID,
		FinishMwms: c.finish.GetMwmIDs(),
		FinishReal: c.finish.GetReal(),
	}
	for _, segment := range c.fake.Segments() {
		id := segment.SegmentIdx
		snap.Vertices = append(snap.Vertices, fakeVertexRecord{ID: id, Vertex: c.fake.vertices[id]})
		for _, to := range c.fake.GetEdges(segment, true) {
			snap.Edges = append(snap.Edges, fakeEdgeRecord{From: id, To: to.SegmentIdx})
		}
		if real, ok := c.fake.fakeToReal[id]; ok {
			snap.Reals = append(snap.Reals, fakeRealRecord{ID: id, Real: real})
		}
	}
	return snap
}

// validate rejects snapshots that reference fake segments they do not define, so a decoded
// container can be appended without tripping the fake graph checks.
func (snap fakeEdgesSnapshot) validate() error {
	ids := make(map[uint32]struct{}, len(snap.Vertices))
	for _, v := range snap.Vertices {
		if v.ID == math.MaxUint32 {
			return fmt.Errorf("%w: fake segment id %d is out of range", ErrInvalidFakeEdges, v.ID)
		}
		if _, ok := ids[v.ID]; ok {
			return fmt.Errorf("%w: fake segment %d is defined twice", ErrInvalidFakeEdges, v.ID)
		}
		ids[v.ID] = struct{}{}
	}
	known := func(id uint32) bool {
		_, ok := ids[id]
		return ok
	}

	if !known(snap.FinishID) {
		return fmt.Errorf("%w: finish %d is not a fake segment", ErrInvalidFakeEdges, snap.FinishID)
	}
	for _, e := range snap.Edges {
		if !known(e.From) || !known(e.To) {
			return fmt.Errorf("%w: edge %d -> %d references an unknown fake segment", ErrInvalidFakeEdges, e.From, e.To)
		}
	}
	for _, r := range snap.Reals {
		if !known(r.ID) {
			return fmt.Errorf("%w: part of real %d is not a fake segment", ErrInvalidFakeEdges, r.ID)
		}
		if r.Real.IsFakeCreated() {
			return fmt.Errorf("%w: fake segment %d is a part of fake %s", ErrInvalidFakeEdges, r.ID, r.Real)
		}
	}
	for _, s := range snap.FinishReal {
		if s.IsFakeCreated() {
			return fmt.Errorf("%w: finish projects onto fake %s", ErrInvalidFakeEdges, s)
		}
	}
	return nil
}

// MarshalBinary encodes the container as a zstd compressed binary snapshot.
func (c *FakeEdgesContainer) MarshalBinary() ([]byte, error) {
	data, err := binary.Marshal(c.snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to encode fake edges: %w", err)
	}
	return datastructure.Compress(data)
}

func (c *FakeEdgesContainer) UnmarshalBinary(data []byte) error {
	raw, err := datastructure.Decompress(data)
	if err != nil {
		return fmt.Errorf("failed to decompress fake edges: %w", err)
	}
	var snap fakeEdgesSnapshot
	if err := binary.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("failed to decode fake edges: %w", err)
	}

	if err := snap.validate(); err != nil {
		return err
	}

	finish := NewEnding()
	finish.ID = snap.FinishID
	for _, id := range snap.FinishMwms {
		finish.MwmIDs[id] = struct{}{}
	}
	for _, s := range snap.FinishReal {
		finish.AddReal(s)
	}

	fake := NewFakeGraph()
	for _, v := range snap.Vertices {
		fake.AddStandaloneVertex(datastructure.NewFakeSegment(v.ID), v.Vertex)
	}
	for _, e := range snap.Edges {
		fake.AddConnection(datastructure.NewFakeSegment(e.From), datastructure.NewFakeSegment(e.To))
	}
	for _, r := range snap.Reals {
		fake.fakeToReal[r.ID] = r.Real
		set, ok := fake.realToFake[r.Real]
		if !ok {
			set = make(map[uint32]struct{})
			fake.realToFake[r.Real] = set
		}
		set[r.ID] = struct{}{}
	}

	c.finish = finish
	c.fake = fake
	return nil
}

// Equal compares the finish and the fake graph content.
func (c *FakeEdgesContainer) Equal(o *FakeEdgesContainer) bool {
	a, b := c.snapshot(), o.snapshot()
	return a.FinishID == b.FinishID &&
		slices.Equal(a.FinishMwms, b.FinishMwms) &&
		slices.Equal(a.FinishReal, b.FinishReal) &&
		slices.Equal(a.Vertices, b.Vertices) &&
		slices.Equal(a.Edges, b.Edges) &&
		slices.Equal(a.Reals, b.Reals)
}
