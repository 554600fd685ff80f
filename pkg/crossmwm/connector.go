package crossmwm

import (
	"golang.org/x/exp/slices"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

/*
Connector. transitions of one mwm.

an exit is a segment of the mwm followed by a segment of another mwm, an enter is a segment of
the mwm preceded by one of another mwm. twins are those neighbours on the other side of the border.
weights hold the shortest enter -> exit weight inside the mwm, without the weight of the enter itself.
*/
type Connector struct {
	MwmID    datastructure.NumMwmID
	enters   map[datastructure.Segment]struct{}
	exits    map[datastructure.Segment]struct{}
	twinsOut map[datastructure.Segment][]datastructure.Segment
	twinsIn  map[datastructure.Segment][]datastructure.Segment
	weights  map[datastructure.Segment]map[datastructure.Segment]datastructure.RouteWeight
}

func NewConnector(mwmID datastructure.NumMwmID) *Connector {
	return &Connector{
		MwmID:    mwmID,
		enters:   make(map[datastructure.Segment]struct{}),
		exits:    make(map[datastructure.Segment]struct{}),
		twinsOut: make(map[datastructure.Segment][]datastructure.Segment),
		twinsIn:  make(map[datastructure.Segment][]datastructure.Segment),
		weights:  make(map[datastructure.Segment]map[datastructure.Segment]datastructure.RouteWeight),
	}
}

// AddExit records that exit leads to twin in another mwm.
func (c *Connector) AddExit(exit, twin datastructure.Segment) {
	c.exits[exit] = struct{}{}
	if !slices.Contains(c.twinsOut[exit], twin) {
		c.twinsOut[exit] = append(c.twinsOut[exit], twin)
	}
}

// AddEnter records that enter is reached from twin in another mwm.
func (c *Connector) AddEnter(enter, twin datastructure.Segment) {
	c.enters[enter] = struct{}{}
	if !slices.Contains(c.twinsIn[enter], twin) {
		c.twinsIn[enter] = append(c.twinsIn[enter], twin)
	}
}

func (c *Connector) SetWeight(enter, exit datastructure.Segment, weight datastructure.RouteWeight) {
	if _, ok := c.weights[enter]; !ok {
		c.weights[enter] = make(map[datastructure.Segment]datastructure.RouteWeight)
	}
	c.weights[enter][exit] = weight
}

func (c *Connector) GetWeight(enter, exit datastructure.Segment) (datastructure.RouteWeight, bool) {
	w, ok := c.weights[enter][exit]
	return w, ok
}

func (c *Connector) IsTransition(segment datastructure.Segment, isOutgoing bool) bool {
	if isOutgoing {
		_, ok := c.exits[segment]
		return ok
	}
	_, ok := c.enters[segment]
	return ok
}

func (c *Connector) GetTwins(segment datastructure.Segment, isOutgoing bool) []datastructure.Segment {
	if isOutgoing {
		return c.twinsOut[segment]
	}
	return c.twinsIn[segment]
}

func sortedKeys(m map[datastructure.Segment]struct{}) []datastructure.Segment {
	res := make([]datastructure.Segment, 0, len(m))
	for s := range m {
		res = append(res, s)
	}
	slices.SortFunc(res, func(a, b datastructure.Segment) int {
		return a.Compare(b)
	})
	return res
}

func (c *Connector) GetEnters() []datastructure.Segment {
	return sortedKeys(c.enters)
}

func (c *Connector) GetExits() []datastructure.Segment {
	return sortedKeys(c.exits)
}

// GetOutgoingEdgeList lists the exits reachable from enter.
func (c *Connector) GetOutgoingEdgeList(enter datastructure.Segment) []datastructure.SegmentEdge {
	var edges []datastructure.SegmentEdge
	for _, exit := range c.GetExits() {
		if w, ok := c.weights[enter][exit]; ok {
			edges = append(edges, datastructure.NewSegmentEdge(exit, w))
		}
	}
	return edges
}

// GetIngoingEdgeList lists the enters exit is reachable from.
func (c *Connector) GetIngoingEdgeList(exit datastructure.Segment) []datastructure.SegmentEdge {
	var edges []datastructure.SegmentEdge
	for _, enter := range c.GetEnters() {
		if w, ok := c.weights[enter][exit]; ok {
			edges = append(edges, datastructure.NewSegmentEdge(enter, w))
		}
	}
	return edges
}

func (c *Connector) sortTwins() {
	for _, twins := range []map[datastructure.Segment][]datastructure.Segment{c.twinsOut, c.twinsIn} {
		for _, list := range twins {
			slices.SortFunc(list, func(a, b datastructure.Segment) int {
				return a.Compare(b)
			})
		}
	}
}
