package router

import (
	"fmt"
	"math"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routing"
	"github.com/organicmaps/organicmaps-sub003/pkg/geo"
	"github.com/organicmaps/organicmaps-sub003/pkg/guides"
	"github.com/organicmaps/organicmaps-sub003/pkg/roadgraph"
	"github.com/organicmaps/organicmaps-sub003/pkg/snap"
)

// endingGraph answers junction queries for road and guide segments alike.
type endingGraph struct {
	roads  *roadgraph.Graph
	guides *guides.Graph
}

func (g endingGraph) GetJunction(segment datastructure.Segment, front bool) datastructure.LatLonWithAltitude {
	if segment.IsGuides() {
		return g.guides.GetJunction(segment, front)
	}
	return g.roads.GetJunction(segment, front)
}

func (g endingGraph) IsOneWay(mwmID datastructure.NumMwmID, featureID uint32) bool {
	if mwmID == datastructure.GuidesNumMwmID {
		return g.guides.IsOneWay(mwmID, featureID)
	}
	return g.roads.IsOneWay(mwmID, featureID)
}

// makeEnding projects point onto the nearest roads, and onto the nearest guide track
// when guides are loaded.
func (r *IndexRouter) makeEnding(graph *roadgraph.Graph, point datastructure.Coordinate) (routing.FakeEnding, error) {
	var segments []datastructure.Segment
	candidates, err := r.snapper.SnapToRoads(point)
	switch {
	case err == nil:
		segments = snap.Segments(candidates)
	case r.guides == nil:
		return routing.FakeEnding{}, fmt.Errorf("%w: %.6f,%.6f: %v", ErrPointNotProjected, point.Lat, point.Lon, err)
	}

	if r.guides != nil {
		segments = append(segments, r.guides.FindNearbySegments(point, r.options.GuidesSnapRadiusM, 1)...)
	}
	if len(segments) == 0 {
		return routing.FakeEnding{}, fmt.Errorf("%w: %.6f,%.6f", ErrPointNotProjected, point.Lat, point.Lon)
	}
	return routing.MakeFakeEnding(segments, point, endingGraph{roads: graph, guides: r.guides}), nil
}

// cos of 14 degrees: a segment within it of the heading is almost codirectional.
const minCosAlmostCodirectional = 0.97

// makeStartEnding is makeEnding for a moving start. with a bearing, two way segments are turned
// along it and the almost codirectional ones are kept if there are any. strictForward reports
// that the start may only continue along its segments.
func (r *IndexRouter) makeStartEnding(graph *roadgraph.Graph, point datastructure.Coordinate,
	bearing *float64) (routing.FakeEnding, bool, error) {
	ending, err := r.makeEnding(graph, point)
	if err != nil || bearing == nil {
		return ending, false, err
	}

	eg := endingGraph{roads: graph, guides: r.guides}
	cosTo := func(s datastructure.Segment) float64 {
		segmentBearing := geo.GetInitialBearing(eg.GetJunction(s, false).GetLatLon(), eg.GetJunction(s, true).GetLatLon())
		return math.Cos((segmentBearing - *bearing) * math.Pi / 180)
	}

	var codirectional []datastructure.Segment
	for _, p := range ending.Projections {
		s := p.Segment
		if !p.IsOneWay && cosTo(s.GetReversed()) > cosTo(s) {
			s = s.GetReversed()
		}
		if cosTo(s) >= minCosAlmostCodirectional {
			codirectional = append(codirectional, s)
		}
	}
	if len(codirectional) == 0 {
		return ending, false, nil
	}
	return routing.MakeFakeEnding(codirectional, point, eg), true, nil
}

// connectGuidesToRoads adds every guide track end near a road as an intermediate ending
// projected onto the track and onto the road, so routes may switch between the two there.
func (r *IndexRouter) connectGuidesToRoads(starter *routing.IndexGraphStarter, graph *roadgraph.Graph) {
	eg := endingGraph{roads: graph, guides: r.guides}
	for _, end := range r.guides.GetTrackEnds() {
		point := end.Point.GetLatLon()
		candidates, err := r.snapper.SnapToRoads(point)
		if err != nil {
			continue
		}
		starter.AddEnding(routing.MakeFakeEnding(append(snap.Segments(candidates), end.Segment), point, eg))
	}
}
