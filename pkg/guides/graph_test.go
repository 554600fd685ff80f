package guides

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routing"
	"github.com/organicmaps/organicmaps-sub003/pkg/geo"
)

var _ routing.GuidesGraph = (*Graph)(nil)

func gseg(track, idx uint32, forward bool) datastructure.Segment {
	return datastructure.NewSegment(datastructure.GuidesNumMwmID, track, idx, forward)
}

func pt(lat, lon float64) datastructure.LatLonWithAltitude {
	return datastructure.NewLatLonWithAltitude(lat, lon, 0)
}

func targets(edges []datastructure.SegmentEdge) []datastructure.Segment {
	res := make([]datastructure.Segment, 0, len(edges))
	for _, e := range edges {
		res = append(res, e.Target)
	}
	return res
}

/*
track 0: a --- b --- c
track 1:       b
               |
               d
*/
func newGuides(t *testing.T) *Graph {
	g := NewGraph(0)
	a, b, c, d := pt(0, 0), pt(0, 0.001), pt(0, 0.002), pt(-0.001, 0.001)
	id, err := g.AddTrack([]datastructure.LatLonWithAltitude{a, b, c})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), id)
	id, err = g.AddTrack([]datastructure.LatLonWithAltitude{b, d})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), id)
	return g
}

func TestGuidesEdges(t *testing.T) {
	g := newGuides(t)

	t.Run("outgoing continues track and switches at the joint", func(t *testing.T) {
		edges := g.GetEdgeList(gseg(0, 0, true), true, datastructure.ZeroRouteWeight())
		assert.ElementsMatch(t, []datastructure.Segment{gseg(0, 1, true), gseg(1, 0, true)}, targets(edges))
		for _, e := range edges {
			assert.Equal(t, g.CalcSegmentWeight(e.Target), e.Weight)
		}
	})

	t.Run("backward segment reaches a", func(t *testing.T) {
		edges := g.GetEdgeList(gseg(1, 0, false), true, datastructure.ZeroRouteWeight())
		assert.ElementsMatch(t, []datastructure.Segment{gseg(0, 0, false), gseg(0, 1, true)}, targets(edges))
	})

	t.Run("end of track", func(t *testing.T) {
		assert.Empty(t, g.GetEdgeList(gseg(0, 1, true), true, datastructure.ZeroRouteWeight()))
	})

	t.Run("ingoing use ingoing weight", func(t *testing.T) {
		w := datastructure.NewRouteWeight(42)
		edges := g.GetEdgeList(gseg(0, 1, true), false, w)
		assert.ElementsMatch(t, []datastructure.Segment{gseg(0, 0, true), gseg(1, 0, false)}, targets(edges))
		for _, e := range edges {
			assert.Equal(t, w, e.Weight)
		}
	})
}

func TestGuidesGeometry(t *testing.T) {
	g := newGuides(t)

	from, to := g.GetFromTo(gseg(0, 1, false))
	assert.Equal(t, pt(0, 0.002), from)
	assert.Equal(t, pt(0, 0.001), to)
	assert.Equal(t, to, g.GetJunction(gseg(0, 1, false), true))
	assert.Equal(t, from, g.GetJunction(gseg(0, 1, false), false))
	assert.False(t, g.IsOneWay(datastructure.GuidesNumMwmID, 0))

	dist := geo.DistanceOnEarth(pt(0, 0).GetLatLon(), pt(0, 0.001).GetLatLon())
	assert.InDelta(t, dist/(DefaultSpeedKmH*1000/3600), g.CalcSegmentWeight(gseg(0, 0, true)).GetWeight(), 1e-9)

	assert.Panics(t, func() { g.GetFromTo(gseg(7, 0, true)) })

	assert.True(t, g.HasSegment(gseg(0, 1, false)))
	assert.False(t, g.HasSegment(gseg(0, 2, true)))
	assert.False(t, g.HasSegment(gseg(7, 0, true)))
	assert.False(t, g.HasSegment(datastructure.NewSegment(0, 0, 0, true)))
}

func TestGetTrackEnds(t *testing.T) {
	g := newGuides(t)

	assert.Equal(t, []TrackEnd{
		{Point: pt(0, 0), Segment: gseg(0, 0, true)},
		{Point: pt(0, 0.002), Segment: gseg(0, 1, true)},
		{Point: pt(0, 0.001), Segment: gseg(1, 0, true)},
		{Point: pt(-0.001, 0.001), Segment: gseg(1, 0, true)},
	}, g.GetTrackEnds())
	assert.Empty(t, NewGraph(0).GetTrackEnds())
}

func TestFindNearbySegments(t *testing.T) {
	g := newGuides(t)

	near := g.FindNearbySegments(datastructure.NewCoordinate(0.0001, 0.0015), 50, 0)
	require.NotEmpty(t, near)
	assert.Equal(t, gseg(0, 1, true), near[0])

	limited := g.FindNearbySegments(datastructure.NewCoordinate(-0.0002, 0.001), 200, 1)
	assert.Equal(t, []datastructure.Segment{gseg(1, 0, true)}, limited)

	assert.Empty(t, g.FindNearbySegments(datastructure.NewCoordinate(1, 1), 50, 0))
}

func TestAddEncodedTrack(t *testing.T) {
	g := NewGraph(5)
	encoded := datastructure.CreatePolyline([]datastructure.Coordinate{
		datastructure.NewCoordinate(1, 1), datastructure.NewCoordinate(1, 1.01),
	})
	id, err := g.AddEncodedTrack(encoded)
	require.NoError(t, err)
	assert.Equal(t, 1, g.TracksCount())

	from, to := g.GetFromTo(gseg(id, 0, true))
	assert.InDelta(t, 1.0, from.Lat, 1e-5)
	assert.InDelta(t, 1.01, to.Lon, 1e-5)

	_, err = g.AddTrack([]datastructure.LatLonWithAltitude{pt(0, 0)})
	assert.ErrorIs(t, err, ErrTrackTooShort)
}
