package crossmwm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

/*
pieces of the line, each in its own mwm:

	... ==p0==> | ==p1==> | ==p2==> ...
	   exit(p0) -> enter(p1)

the forward exit of a piece is its last forward segment, its twin is the first forward
segment of the next piece. backward it is the other way around.
*/
func TestBuildConnector(t *testing.T) {
	g, pieces := newLineGraph(t)
	b := NewBuilder(g, zap.NewNop())

	for i := 1; i+1 < len(pieces); i++ {
		prev, p, next := pieces[i-1], pieces[i], pieces[i+1]
		c, err := b.BuildConnector(context.Background(), p.MwmID)
		require.NoError(t, err)

		assert.True(t, c.IsTransition(lastSeg(p, true), true))
		assert.Contains(t, c.GetTwins(lastSeg(p, true), true), firstSeg(next, true))
		assert.True(t, c.IsTransition(firstSeg(p, true), false))
		assert.Contains(t, c.GetTwins(firstSeg(p, true), false), lastSeg(prev, true))

		assert.True(t, c.IsTransition(firstSeg(p, false), true))
		assert.Contains(t, c.GetTwins(firstSeg(p, false), true), lastSeg(prev, false))
		assert.True(t, c.IsTransition(lastSeg(p, false), false))

		expected := 0.0
		for s := 1; s < p.GetSegmentsCount(); s++ {
			expected += g.CalcSegmentWeight(datastructure.NewSegment(p.MwmID, p.FeatureID, uint32(s), true),
				datastructure.PurposeWeight).GetWeight()
		}
		w, ok := c.GetWeight(firstSeg(p, true), lastSeg(p, true))
		require.True(t, ok)
		assert.InDelta(t, expected, w.GetWeight(), 1e-6)

		// no way back without a u-turn.
		_, ok = c.GetWeight(firstSeg(p, true), firstSeg(p, false))
		if p.GetSegmentsCount() > 1 {
			assert.False(t, ok)
		}
	}
}

func TestBuildAll(t *testing.T) {
	g, pieces := newLineGraph(t)
	b := NewBuilder(g, zap.NewNop())

	mwms := g.GetIndex().GetMwms()
	connectors, err := b.BuildAll(context.Background(), mwms, 4)
	require.NoError(t, err)
	require.Len(t, connectors, len(mwms))
	for i, c := range connectors {
		assert.Equal(t, mwms[i], c.MwmID)
	}

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := b.BuildConnector(ctx, pieces[1].MwmID)
		assert.Error(t, err)
	})
}
