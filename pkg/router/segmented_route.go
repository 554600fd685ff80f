package router

import (
	"fmt"

	"github.com/kelindar/binary"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routing"
)

// SegmentedRoute is what AdjustRoute needs of an earlier route: the path of every subroute over
// the fake graph of the route, the search mode of every subroute, and that fake graph.
type SegmentedRoute struct {
	Subroutes [][]datastructure.Segment
	Modes     []datastructure.WorldGraphMode
	FakeEdges *routing.FakeEdgesContainer
}

func (r *SegmentedRoute) appendSubroute(path []datastructure.Segment, mode datastructure.WorldGraphMode) {
	r.Subroutes = append(r.Subroutes, path)
	r.Modes = append(r.Modes, mode)
}

type segmentedRouteSnapshot struct {
	Subroutes [][]datastructure.Segment
	Modes     []datastructure.WorldGraphMode
	FakeEdges []byte
}

func (r *SegmentedRoute) MarshalBinary() ([]byte, error) {
	fakeEdges, err := r.FakeEdges.MarshalBinary()
	if err != nil {
		return nil, err
	}
	data, err := binary.Marshal(segmentedRouteSnapshot{Subroutes: r.Subroutes, Modes: r.Modes, FakeEdges: fakeEdges})
	if err != nil {
		return nil, fmt.Errorf("failed to encode segmented route: %w", err)
	}
	return datastructure.Compress(data)
}

// UnmarshalBinary decodes a route and checks that every fake step is defined by its fake graph.
func (r *SegmentedRoute) UnmarshalBinary(data []byte) error {
	raw, err := datastructure.Decompress(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreviousRoute, err)
	}
	var snap segmentedRouteSnapshot
	if err := binary.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreviousRoute, err)
	}
	fakeEdges := &routing.FakeEdgesContainer{}
	if err := fakeEdges.UnmarshalBinary(snap.FakeEdges); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreviousRoute, err)
	}

	if len(snap.Subroutes) == 0 || len(snap.Subroutes) != len(snap.Modes) {
		return fmt.Errorf("%w: %d subroutes with %d modes", ErrInvalidPreviousRoute, len(snap.Subroutes), len(snap.Modes))
	}
	for i, path := range snap.Subroutes {
		if len(path) < 3 || !routing.IsFakeSegment(path[0]) || !routing.IsFakeSegment(path[len(path)-1]) {
			return fmt.Errorf("%w: subroute %d is not a route between fake endings", ErrInvalidPreviousRoute, i)
		}
		for _, s := range path {
			if routing.IsFakeSegment(s) && !fakeEdges.HasFakeSegment(s) {
				return fmt.Errorf("%w: subroute %d passes undefined %s", ErrInvalidPreviousRoute, i, s)
			}
		}
		if snap.Modes[i] >= datastructure.ModeUndefined {
			return fmt.Errorf("%w: subroute %d has mode %d", ErrInvalidPreviousRoute, i, snap.Modes[i])
		}
	}

	r.Subroutes = snap.Subroutes
	r.Modes = snap.Modes
	r.FakeEdges = fakeEdges
	return nil
}

// realSegments lists the real and guide segments the route refers to, steps first.
func (r *SegmentedRoute) realSegments() []datastructure.Segment {
	var res []datastructure.Segment
	for _, path := range r.Subroutes {
		for _, s := range path {
			if !routing.IsFakeSegment(s) {
				res = append(res, s)
			}
		}
	}
	return append(res, r.FakeEdges.GetRealSegments()...)
}
