package snap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/roadgraph"
)

func pt(lat, lon float64) datastructure.LatLonWithAltitude {
	return datastructure.NewLatLonWithAltitude(lat, lon, 0)
}

/*
road 0:  (0,0) ---- (0,0.001) ---- (0,0.002)
road 1:             (0,0.001)
                        |
                    (-0.001,0.001)
*/
func newSnapper(t *testing.T) *RoadSnapper {
	ri := roadgraph.NewRoadIndex(nil)
	_, err := ri.AddRoad(roadgraph.Road{
		Points:      []datastructure.LatLonWithAltitude{pt(0, 0), pt(0, 0.001), pt(0, 0.002)},
		NodeIDs:     []int64{1, 2, 3},
		HighwayType: datastructure.HighwayResidential,
	})
	require.NoError(t, err)
	_, err = ri.AddRoad(roadgraph.Road{
		Points:      []datastructure.LatLonWithAltitude{pt(0, 0.001), pt(-0.001, 0.001)},
		NodeIDs:     []int64{2, 4},
		HighwayType: datastructure.HighwayResidential,
	})
	require.NoError(t, err)

	rs := NewRoadSnapper(50, 2, zap.NewNop())
	rs.BuildRoadSnapper(ri)
	assert.Equal(t, 3, rs.Size())
	return rs
}

func TestSnapToRoads(t *testing.T) {
	rs := newSnapper(t)

	t.Run("closest segment first", func(t *testing.T) {
		candidates, err := rs.SnapToRoads(datastructure.NewCoordinate(0.0001, 0.0015))
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, datastructure.NewSegment(0, 0, 1, true), candidates[0].Segment)
		assert.InDelta(t, 0.0, candidates[0].Projection.Lat, 1e-6)
		assert.InDelta(t, 11.1, candidates[0].DistM, 0.2)
	})

	t.Run("one candidate per road", func(t *testing.T) {
		candidates, err := rs.SnapToRoads(datastructure.NewCoordinate(-0.00005, 0.0011))
		require.NoError(t, err)
		require.Len(t, candidates, 2)
		assert.Equal(t, datastructure.NewSegment(0, 0, 1, true), candidates[0].Segment)
		assert.Equal(t, datastructure.NewSegment(0, 1, 0, true), candidates[1].Segment)
		assert.Equal(t, []datastructure.Segment{candidates[0].Segment, candidates[1].Segment}, Segments(candidates))
	})

	t.Run("limit", func(t *testing.T) {
		candidates, err := rs.SnapToRoadsWithinRadius(datastructure.NewCoordinate(-0.00005, 0.0011), 50, 1)
		require.NoError(t, err)
		assert.Len(t, candidates, 1)
	})

	t.Run("too far", func(t *testing.T) {
		_, err := rs.SnapToRoads(datastructure.NewCoordinate(1, 1))
		assert.ErrorIs(t, err, ErrNoRoadNearby)
	})
}
