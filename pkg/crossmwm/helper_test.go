package crossmwm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/roadgraph"
)

// newLineGraph is a two way road along the equator cut into several mwms.
func newLineGraph(t *testing.T) (*roadgraph.Graph, []*roadgraph.Road) {
	t.Helper()
	ri := roadgraph.NewRoadIndex(roadgraph.NewMwmRegistry(5, 3))
	road := roadgraph.Road{HighwayType: datastructure.HighwayPrimary, PassThroughAllowed: true}
	for i := 0; i <= 100; i++ {
		road.Points = append(road.Points, datastructure.NewLatLonWithAltitude(0, float64(i)*0.01, 0))
		road.NodeIDs = append(road.NodeIDs, int64(i+1))
	}
	pieces, err := ri.AddRoad(road)
	require.NoError(t, err)
	require.Greater(t, len(pieces), 3)
	return roadgraph.NewGraph(ri, roadgraph.NewEdgeEstimator(0, 0), roadgraph.GraphOptions{}), pieces
}

func firstSeg(r *roadgraph.Road, forward bool) datastructure.Segment {
	return datastructure.NewSegment(r.MwmID, r.FeatureID, 0, forward)
}

func lastSeg(r *roadgraph.Road, forward bool) datastructure.Segment {
	return datastructure.NewSegment(r.MwmID, r.FeatureID, uint32(r.GetSegmentsCount()-1), forward)
}
