package regions

import (
	"golang.org/x/exp/slices"

	"github.com/organicmaps/organicmaps-sub003/pkg/crossmwm"
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

type JunctionGraph interface {
	GetJunction(segment datastructure.Segment, front bool) datastructure.LatLonWithAltitude
	GetSegmentLengthM(segment datastructure.Segment) float64
}

/*
BuildRecords derives the sparse graph from the connectors:

	enter ==inner==> exit --twin--> enter of the next mwm

every enter -> exit pair with an inner weight and every exit -> twin pair becomes an edge.
*/
func BuildRecords(connectors []*crossmwm.Connector, graph JunctionGraph) []SegmentRecord {
	records := make(map[datastructure.Segment]*SegmentRecord)
	record := func(s datastructure.Segment) *SegmentRecord {
		if r, ok := records[s]; ok {
			return r
		}
		from, to := graph.GetJunction(s, false), graph.GetJunction(s, true)
		r := &SegmentRecord{
			Segment:  toKey(s),
			FromLat:  from.Lat,
			FromLon:  from.Lon,
			ToLat:    to.Lat,
			ToLon:    to.Lon,
			Altitude: to.Altitude,
			LengthM:  graph.GetSegmentLengthM(s),
		}
		records[s] = r
		return r
	}
	link := func(from, to datastructure.Segment) {
		fr, tr := record(from), record(to)
		if !slices.Contains(fr.Outgoing, toKey(to)) {
			fr.Outgoing = append(fr.Outgoing, toKey(to))
		}
		if !slices.Contains(tr.Ingoing, toKey(from)) {
			tr.Ingoing = append(tr.Ingoing, toKey(from))
		}
	}

	for _, c := range connectors {
		for _, enter := range c.GetEnters() {
			for _, edge := range c.GetOutgoingEdgeList(enter) {
				if edge.Target != enter {
					link(enter, edge.Target)
				} else {
					record(enter)
				}
			}
		}
		for _, exit := range c.GetExits() {
			for _, twin := range c.GetTwins(exit, true) {
				link(exit, twin)
			}
		}
	}

	segments := make([]datastructure.Segment, 0, len(records))
	for s := range records {
		segments = append(segments, s)
	}
	slices.SortFunc(segments, func(a, b datastructure.Segment) int {
		return a.Compare(b)
	})
	res := make([]SegmentRecord, 0, len(segments))
	for _, s := range segments {
		res = append(res, *records[s])
	}
	return res
}
