package regions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/organicmaps/organicmaps-sub003/pkg/crossmwm"
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/geo"
	"github.com/organicmaps/organicmaps-sub003/pkg/roadgraph"
)

type fixture struct {
	graph  *roadgraph.Graph
	pieces []*roadgraph.Road
	kv     *KVDB
	sparse *SparseGraph
}

func firstSeg(r *roadgraph.Road, forward bool) datastructure.Segment {
	return datastructure.NewSegment(r.MwmID, r.FeatureID, 0, forward)
}

func lastSeg(r *roadgraph.Road, forward bool) datastructure.Segment {
	return datastructure.NewSegment(r.MwmID, r.FeatureID, uint32(r.GetSegmentsCount()-1), forward)
}

// newFixture cuts a one way road along the equator into mwms and stores its regions graph.
func newFixture(t *testing.T) fixture {
	t.Helper()
	ri := roadgraph.NewRoadIndex(roadgraph.NewMwmRegistry(5, 3))
	road := roadgraph.Road{HighwayType: datastructure.HighwayTrunk, OneWay: true}
	for i := 0; i <= 100; i++ {
		road.Points = append(road.Points, datastructure.NewLatLonWithAltitude(0, float64(i)*0.01, 0))
		road.NodeIDs = append(road.NodeIDs, int64(i+1))
	}
	pieces, err := ri.AddRoad(road)
	require.NoError(t, err)
	require.Greater(t, len(pieces), 3)

	g := roadgraph.NewGraph(ri, roadgraph.NewEdgeEstimator(0, 0), roadgraph.GraphOptions{})
	connectors, err := crossmwm.NewBuilder(g, zap.NewNop()).BuildAll(context.Background(), ri.GetMwms(), 2)
	require.NoError(t, err)

	kv, err := OpenKVDB("", true, 7, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	require.NoError(t, kv.SaveRecords(context.Background(), BuildRecords(connectors, g)))

	sparse, err := NewSparseGraph(kv, 0, zap.NewNop())
	require.NoError(t, err)
	return fixture{graph: g, pieces: pieces, kv: kv, sparse: sparse}
}

func TestBuildRecords(t *testing.T) {
	f := newFixture(t)
	p, next := f.pieces[1], f.pieces[2]

	t.Run("exit leads to the next mwm", func(t *testing.T) {
		exit := lastSeg(p, true)
		edges := f.sparse.GetEdgeList(exit, true, f.sparse.GetJunction(exit, true).GetLatLon())
		require.Len(t, edges, 1)
		assert.Equal(t, firstSeg(next, true), edges[0].Target)
		assert.InDelta(t, f.graph.GetSegmentLengthM(firstSeg(next, true)), edges[0].Weight.GetWeight(), 1e-6)
	})

	t.Run("enter leads to the exit of its mwm", func(t *testing.T) {
		enter := firstSeg(p, true)
		if p.GetSegmentsCount() == 1 {
			t.Skip("enter is the exit")
		}
		edges := f.sparse.GetEdgeList(enter, true, f.sparse.GetJunction(enter, true).GetLatLon())
		require.Len(t, edges, 1)
		assert.Equal(t, lastSeg(p, true), edges[0].Target)

		in := f.sparse.GetEdgeList(lastSeg(p, true), false, f.sparse.GetJunction(lastSeg(p, true), true).GetLatLon())
		assert.Contains(t, targetsOf(in), enter)
	})

	t.Run("geometry", func(t *testing.T) {
		s := lastSeg(p, true)
		assert.Equal(t, f.graph.GetJunction(s, true), f.sparse.GetJunction(s, true))
		assert.Equal(t, f.graph.GetJunction(s, false), f.sparse.GetJunction(s, false))
		assert.InDelta(t, f.graph.GetSegmentLengthM(s), f.sparse.CalcSegmentWeight(s).GetWeight(), 1e-9)
		assert.True(t, f.sparse.IsOneWay(s.MwmID, s.FeatureID))
	})

	t.Run("unknown segment", func(t *testing.T) {
		unknown := datastructure.NewSegment(999, 1, 1, true)
		assert.False(t, f.sparse.Contains(unknown))
		assert.Empty(t, f.sparse.GetEdgeList(unknown, true, datastructure.NewCoordinate(0, 0)))
		assert.Panics(t, func() { f.sparse.GetJunction(unknown, true) })

		_, err := f.kv.GetRecord(unknown)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestGetNearestTransitions(t *testing.T) {
	f := newFixture(t)
	exit := lastSeg(f.pieces[1], true)
	front := f.graph.GetPoint(exit, true)

	segments, err := f.kv.GetNearestTransitions(front)
	require.NoError(t, err)
	assert.Contains(t, segments, exit)

	t.Run("indexed under both ends", func(t *testing.T) {
		for _, front := range []bool{false, true} {
			p := f.graph.GetPoint(exit, front)
			keys, err := f.kv.getCell(f.kv.cellOf(p.Lat, p.Lon))
			require.NoError(t, err)
			assert.Contains(t, keys, toKey(exit))
		}
	})

	t.Run("ring search widens", func(t *testing.T) {
		// ~2 km north of the road.
		lat, lon := geo.GetDestinationPoint(front.Lat, front.Lon, 0, 2)
		segments, err := f.kv.GetNearestTransitions(datastructure.NewCoordinate(lat, lon))
		require.NoError(t, err)
		assert.NotEmpty(t, segments)
	})

	t.Run("nothing around", func(t *testing.T) {
		_, err := f.kv.GetNearestTransitions(datastructure.NewCoordinate(-60, 100))
		assert.ErrorIs(t, err, ErrTransitionsNotFound)
	})
}

func targetsOf(edges []datastructure.SegmentEdge) []datastructure.Segment {
	res := make([]datastructure.Segment, 0, len(edges))
	for _, e := range edges {
		res = append(res, e.Target)
	}
	return res
}
