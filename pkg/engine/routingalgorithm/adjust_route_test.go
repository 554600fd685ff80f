package routingalgorithm

import (
	"context"
	"testing"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
previous route 0 => 1 => 2 => 3, every step weighs 1. the new start is 7.

	7 ---1---> 1
	7 ---5---> 3
	0 -> 1 -> 2 -> 3
*/
func newAdjustGraph() (*testGraph, []datastructure.SegmentEdge) {
	g := newTestGraph()
	g.addEdge(0, 1, 1)
	g.addEdge(1, 2, 1)
	g.addEdge(2, 3, 1)
	g.addEdge(7, 1, 1)
	g.addEdge(7, 3, 5)

	var prev []datastructure.SegmentEdge
	for _, id := range []uint32{0, 1, 2, 3} {
		prev = append(prev, datastructure.NewSegmentEdge(seg(id), datastructure.NewRouteWeight(1)))
	}
	return g, prev
}

func TestAdjustRoute(t *testing.T) {
	g, prev := newAdjustGraph()

	res, err := AdjustRoute(context.Background(), g, AdjustParams{Start: seg(7), PrevRoute: prev})
	require.NoError(t, err)
	// joins at 1: 1 (wave) + 2 (steps 2 and 3) beats 5 straight to 3.
	assert.Equal(t, []datastructure.Segment{seg(7), seg(1), seg(2), seg(3)}, res.Path)
	assert.Equal(t, 3.0, res.Distance.GetWeight())

	t.Run("shortcut to a later step", func(t *testing.T) {
		g, prev := newAdjustGraph()
		g.out[seg(7)][1].Weight = datastructure.NewRouteWeight(0.5)

		res, err := AdjustRoute(context.Background(), g, AdjustParams{Start: seg(7), PrevRoute: prev})
		require.NoError(t, err)
		assert.Equal(t, []datastructure.Segment{seg(7), seg(3)}, res.Path)
		assert.Equal(t, 0.5, res.Distance.GetWeight())
	})

	t.Run("length limit", func(t *testing.T) {
		_, err := AdjustRoute(context.Background(), g, AdjustParams{
			Start:     seg(7),
			PrevRoute: prev,
			CheckLength: func(w datastructure.RouteWeight) bool {
				return w.GetWeight() <= 0.5
			},
		})
		assert.ErrorIs(t, err, ErrNoPath)
	})

	t.Run("start on the previous route", func(t *testing.T) {
		res, err := AdjustRoute(context.Background(), g, AdjustParams{Start: seg(2), PrevRoute: prev})
		require.NoError(t, err)
		assert.Equal(t, []datastructure.Segment{seg(2), seg(3)}, res.Path)
		assert.Equal(t, 1.0, res.Distance.GetWeight())
	})

	t.Run("no previous route", func(t *testing.T) {
		_, err := AdjustRoute(context.Background(), g, AdjustParams{Start: seg(7)})
		assert.ErrorIs(t, err, ErrNoPath)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := AdjustRoute(ctx, g, AdjustParams{Start: seg(7), PrevRoute: prev})
		assert.ErrorIs(t, err, ErrCancelled)
	})
}
