package router

import (
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routing"
	"github.com/organicmaps/organicmaps-sub003/pkg/geo"
)

type Route struct {
	Points    []datastructure.Coordinate `json:"points"`
	Polyline  string                     `json:"polyline"`
	ETA       float64                    `json:"eta"`
	DistanceM float64                    `json:"distance_m"`
	Segments  []datastructure.Segment    `json:"segments"`
	Streets   []string                   `json:"streets"`
	Modes     []string                   `json:"modes"`

	// Segmented is kept for AdjustRoute.
	Segmented *SegmentedRoute `json:"-"`
}

type subroute struct {
	points    []datastructure.Coordinate
	segments  []datastructure.Segment
	streets   []string
	eta       float64
	distanceM float64
}

func (r *Route) appendSubroute(sub subroute, mode datastructure.WorldGraphMode) {
	points := sub.points
	if len(r.Points) > 0 && len(points) > 0 && r.Points[len(r.Points)-1] == points[0] {
		points = points[1:]
	}
	r.Points = append(r.Points, points...)
	r.Polyline = datastructure.CreatePolyline(r.Points)
	r.ETA += sub.eta
	r.DistanceM += sub.distanceM
	r.Segments = appendDistinct(r.Segments, sub.segments...)
	r.Streets = appendDistinct(r.Streets, sub.streets...)
	r.Modes = append(r.Modes, mode.String())
}

// appendDistinct skips values equal to the last one already in dst.
func appendDistinct[T comparable](dst []T, values ...T) []T {
	for _, v := range values {
		if len(dst) > 0 && dst[len(dst)-1] == v {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}

// redress turns a path over the starter into geometry and travel time.
func (r *IndexRouter) redress(starter *routing.IndexGraphStarter, path []datastructure.Segment) subroute {
	var sub subroute
	for i := 0; i <= len(path); i++ {
		sub.points = appendDistinct(sub.points, starter.GetRouteJunction(path, i).GetLatLon())
	}
	for i := 1; i < len(sub.points); i++ {
		sub.distanceM += geo.DistanceOnEarth(sub.points[i-1], sub.points[i])
	}
	for i := 1; i < len(path); i++ {
		sub.eta += starter.CalculateETA(path[i-1], path[i])
	}

	for _, s := range path {
		real, ok := starter.ConvertToReal(s)
		if !ok || !real.IsRealSegment() {
			continue
		}
		sub.segments = appendDistinct(sub.segments, real)
		if road, ok := r.index.GetRoad(real.MwmID, real.FeatureID); ok && road.Name != "" {
			sub.streets = appendDistinct(sub.streets, road.Name)
		}
	}
	return sub
}
