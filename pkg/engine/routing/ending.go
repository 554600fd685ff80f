package routing

import (
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"golang.org/x/exp/slices"
)

// Ending is the start or finish side of a request: its stub id and the real segments it projects onto.
type Ending struct {
	ID     uint32
	MwmIDs map[datastructure.NumMwmID]struct{}
	Real   map[datastructure.Segment]struct{}
}

func NewEnding() Ending {
	return Ending{
		MwmIDs: make(map[datastructure.NumMwmID]struct{}),
		Real:   make(map[datastructure.Segment]struct{}),
	}
}

func (e *Ending) AddReal(segment datastructure.Segment) {
	e.Real[segment] = struct{}{}
}

func (e *Ending) FillMwmIDs() {
	for segment := range e.Real {
		e.MwmIDs[segment.MwmID] = struct{}{}
	}
}

func (e Ending) HasMwm(mwmID datastructure.NumMwmID) bool {
	_, ok := e.MwmIDs[mwmID]
	return ok
}

// GetMwmIDs returns the touched mwms in ascending order.
func (e Ending) GetMwmIDs() []datastructure.NumMwmID {
	ids := make([]datastructure.NumMwmID, 0, len(e.MwmIDs))
	for id := range e.MwmIDs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// GetReal returns the real segments in Segment order.
func (e Ending) GetReal() []datastructure.Segment {
	segments := make([]datastructure.Segment, 0, len(e.Real))
	for s := range e.Real {
		segments = append(segments, s)
	}
	slices.SortFunc(segments, func(a, b datastructure.Segment) int {
		return a.Compare(b)
	})
	return segments
}

func (e Ending) clone() Ending {
	c := NewEnding()
	c.ID = e.ID
	for id := range e.MwmIDs {
		c.MwmIDs[id] = struct{}{}
	}
	for s := range e.Real {
		c.Real[s] = struct{}{}
	}
	return c
}
