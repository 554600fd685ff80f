package roadgraph

import (
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

func pt(lat, lon float64) datastructure.LatLonWithAltitude {
	return datastructure.NewLatLonWithAltitude(lat, lon, 0)
}

func seg(fid, idx uint32, forward bool) datastructure.Segment {
	return datastructure.NewSegment(0, fid, idx, forward)
}

func targets(edges []datastructure.SegmentEdge) []datastructure.Segment {
	res := make([]datastructure.Segment, 0, len(edges))
	for _, e := range edges {
		res = append(res, e.GetTarget())
	}
	return res
}

/*
newSmallIndex. single mwm, feature ids in insertion order.

	A(1) ---0--- B(2) ---0--- C(3)        road 0, two way residential
	              |
	              1 (one way, B -> D, no pass through, toll)
	              v
	             D(4) ---2--- E(5)        road 2, two way, access conditional
*/
func newSmallIndex() *RoadIndex {
	ri := NewRoadIndex(nil)
	roads := []Road{
		{
			Points:             []datastructure.LatLonWithAltitude{pt(0, 0), pt(0, 0.001), pt(0, 0.002)},
			NodeIDs:            []int64{1, 2, 3},
			PassThroughAllowed: true,
			HighwayType:        datastructure.HighwayResidential,
		},
		{
			Points:      []datastructure.LatLonWithAltitude{pt(0, 0.001), pt(-0.001, 0.001)},
			NodeIDs:     []int64{2, 4},
			OneWay:      true,
			HighwayType: datastructure.HighwayResidential,
			Options:     datastructure.RoadToll,
		},
		{
			Points:            []datastructure.LatLonWithAltitude{pt(-0.001, 0.001), pt(-0.001, 0.002)},
			NodeIDs:           []int64{4, 5},
			HighwayType:       datastructure.HighwayPrimary,
			AccessConditional: true,
		},
	}
	for _, r := range roads {
		if _, err := ri.AddRoad(r); err != nil {
			panic(err)
		}
	}
	return ri
}
