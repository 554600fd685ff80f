package leaps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routingalgorithm"
)

/*
three mwms in a row, mwm 3 is in another country.

	mwm 1            mwm 2                 mwm 3
	start ==> x1 --> e2 ====100====> x2 --> e3 ==> finish
	(lon 0)  (0.1)  (0.11)          (0.5)  (0.51)  (0.6)
*/
func newLeapsFixture(startMwm, finishMwm uint16) (*LeapsGraph, map[string]datastructure.Segment) {
	s := map[string]datastructure.Segment{
		"start":  datastructure.NewFakeSegment(0),
		"finish": datastructure.NewFakeSegment(1),
		"x1":     seg(1, 10),
		"e2":     seg(2, 20),
		"x2":     seg(2, 21),
		"e3":     seg(3, 30),
	}
	points := map[datastructure.Segment]datastructure.Coordinate{
		s["start"]:  pt(0),
		s["x1"]:     pt(0.1),
		s["e2"]:     pt(0.11),
		s["x2"]:     pt(0.5),
		s["e3"]:     pt(0.51),
		s["finish"]: pt(0.6),
	}
	starter := &testStarter{
		start:        s["start"],
		finish:       s["finish"],
		startEnding:  ending(datastructure.NumMwmID(startMwm)),
		finishEnding: ending(datastructure.NumMwmID(finishMwm)),
		points:       points,
	}
	crossMwm := newTestCrossMwm(points)
	crossMwm.addTwins(s["x1"], s["e2"])
	crossMwm.addTwins(s["x2"], s["e3"])
	crossMwm.addInner(s["e2"], s["x2"], 100)

	penalty := NewMwmHierarchyHandler(testCountries{1: 1, 2: 1, 3: 2}, CrossCountryPenaltyS, MwmCrossingPenaltyS)
	return NewLeapsGraph(starter, crossMwm, penalty), s
}

func TestLeapsGraphEdges(t *testing.T) {
	g, s := newLeapsFixture(1, 3)

	t.Run("start connects to exits of its mwm", func(t *testing.T) {
		edges := g.GetEdgesList(s["start"], true)
		require.Len(t, edges, 1)
		assert.Equal(t, s["x1"], edges[0].Target)
		assert.InDelta(t, 100.0, edges[0].Weight.GetWeight(), 1e-9)
	})

	t.Run("finish is reached from enters of its mwm", func(t *testing.T) {
		edges := g.GetEdgesList(s["finish"], false)
		require.Len(t, edges, 1)
		assert.Equal(t, s["e3"], edges[0].Target)
		assert.InDelta(t, 90.0, edges[0].Weight.GetWeight(), 1e-9)
	})

	t.Run("twin inside a country", func(t *testing.T) {
		edges := g.GetEdgesList(s["x1"], true)
		require.Len(t, edges, 1)
		assert.Equal(t, s["e2"], edges[0].Target)
		assert.InDelta(t, 1.0, edges[0].Weight.GetWeight(), 1e-9)
	})

	t.Run("twin across a country border", func(t *testing.T) {
		edges := g.GetEdgesList(s["x2"], true)
		require.Len(t, edges, 1)
		assert.Equal(t, s["e3"], edges[0].Target)
		assert.InDelta(t, CrossCountryPenaltyS+1, edges[0].Weight.GetWeight(), 1e-9)
	})

	t.Run("inner edges", func(t *testing.T) {
		edges := g.GetEdgesList(s["e2"], true)
		require.Len(t, edges, 1)
		assert.Equal(t, s["x2"], edges[0].Target)

		edges = g.GetEdgesList(s["x2"], false)
		require.Len(t, edges, 1)
		assert.Equal(t, s["e2"], edges[0].Target)
	})

	t.Run("enter of finish mwm leads to finish", func(t *testing.T) {
		edges := g.GetEdgesList(s["e3"], true)
		require.Len(t, edges, 1)
		assert.Equal(t, s["finish"], edges[0].Target)
	})

	t.Run("wrong wave direction", func(t *testing.T) {
		assert.Panics(t, func() { g.GetEdgesList(s["start"], false) })
		assert.Panics(t, func() { g.GetEdgesList(s["finish"], true) })
	})

	t.Run("heuristic only towards endings", func(t *testing.T) {
		assert.NotPanics(t, func() { g.HeuristicCostEstimate(s["x1"], s["finish"]) })
		assert.NotPanics(t, func() { g.HeuristicCostEstimate(s["x1"], s["start"]) })
		assert.Panics(t, func() { g.HeuristicCostEstimate(s["x1"], s["e2"]) })
	})
}

func TestLeapsGraphFindPath(t *testing.T) {
	g, s := newLeapsFixture(1, 3)

	res, err := routingalgorithm.FindPath(context.Background(), g, routingalgorithm.Params{
		Start:  g.GetStartSegment(),
		Finish: g.GetFinishSegment(),
	})
	require.NoError(t, err)
	assert.Equal(t, []datastructure.Segment{s["start"], s["x1"], s["e2"], s["x2"], s["e3"], s["finish"]}, res.Path)
	assert.InDelta(t, 100+1+100+CrossCountryPenaltyS+1+90, res.Distance.GetWeight(), 1e-6)
}

func TestLeapsGraphSameMwm(t *testing.T) {
	g, s := newLeapsFixture(2, 2)

	edges := g.GetEdgesList(s["start"], true)
	targets := make([]datastructure.Segment, 0, len(edges))
	for _, e := range edges {
		targets = append(targets, e.Target)
	}
	assert.ElementsMatch(t, []datastructure.Segment{s["x2"], s["finish"]}, targets)
}
