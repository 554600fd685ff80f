package guides

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/tidwall/rtree"
	"golang.org/x/exp/slices"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/geo"
)

const DefaultSpeedKmH = 4.0

var ErrTrackTooShort = errors.New("guide track must have at least two points")

type trackPoint struct {
	trackID  uint32
	pointIdx int
}

/*
Graph. user authored tracks (guides), walkable both ways.

segment i of track t is Segment{GuidesNumMwmID, t, i, forward}. tracks meeting at an equal
point are connected there.
*/
type Graph struct {
	mu       sync.RWMutex
	tracks   [][]datastructure.LatLonWithAltitude
	joints   map[datastructure.Coordinate][]trackPoint
	tree     rtree.RTreeG[datastructure.Segment]
	speedKmH float64
}

func NewGraph(speedKmH float64) *Graph {
	if speedKmH <= 0 {
		speedKmH = DefaultSpeedKmH
	}
	return &Graph{
		joints:   make(map[datastructure.Coordinate][]trackPoint),
		speedKmH: speedKmH,
	}
}

func (g *Graph) AddTrack(points []datastructure.LatLonWithAltitude) (uint32, error) {
	if len(points) < 2 {
		return 0, ErrTrackTooShort
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	id := uint32(len(g.tracks))
	g.tracks = append(g.tracks, slices.Clone(points))
	for i, p := range points {
		g.joints[p.GetLatLon()] = append(g.joints[p.GetLatLon()], trackPoint{trackID: id, pointIdx: i})
	}
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		min := [2]float64{math.Min(a.Lon, b.Lon), math.Min(a.Lat, b.Lat)}
		max := [2]float64{math.Max(a.Lon, b.Lon), math.Max(a.Lat, b.Lat)}
		g.tree.Insert(min, max, datastructure.NewSegment(datastructure.GuidesNumMwmID, id, uint32(i), true))
	}
	return id, nil
}

// AddEncodedTrack adds a track given as an encoded polyline.
func (g *Graph) AddEncodedTrack(encoded string) (uint32, error) {
	coords, err := datastructure.DecodePolyline(encoded)
	if err != nil {
		return 0, fmt.Errorf("decode guide track: %w", err)
	}
	points := make([]datastructure.LatLonWithAltitude, 0, len(coords))
	for _, c := range coords {
		points = append(points, datastructure.NewLatLonWithAltitude(c.Lat, c.Lon, 0))
	}
	return g.AddTrack(points)
}

func (g *Graph) TracksCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.tracks)
}

// HasSegment reports whether segment is a guide segment of a loaded track.
func (g *Graph) HasSegment(segment datastructure.Segment) bool {
	if !segment.IsGuides() {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return int(segment.FeatureID) < len(g.tracks) && int(segment.SegmentIdx)+1 < len(g.tracks[segment.FeatureID])
}

// TrackEnd is an end point of a track and the track segment touching it.
type TrackEnd struct {
	Point   datastructure.LatLonWithAltitude
	Segment datastructure.Segment
}

// GetTrackEnds lists both ends of every track, in track order.
func (g *Graph) GetTrackEnds() []TrackEnd {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ends := make([]TrackEnd, 0, 2*len(g.tracks))
	for id, t := range g.tracks {
		last := uint32(len(t) - 2)
		ends = append(ends,
			TrackEnd{Point: t[0], Segment: datastructure.NewSegment(datastructure.GuidesNumMwmID, uint32(id), 0, true)},
			TrackEnd{Point: t[len(t)-1], Segment: datastructure.NewSegment(datastructure.GuidesNumMwmID, uint32(id), last, true)})
	}
	return ends
}

func (g *Graph) track(segment datastructure.Segment) []datastructure.LatLonWithAltitude {
	if int(segment.FeatureID) >= len(g.tracks) {
		panic(fmt.Sprintf("unknown guide track in %s", segment))
	}
	return g.tracks[segment.FeatureID]
}

func (g *Graph) GetFromTo(segment datastructure.Segment) (datastructure.LatLonWithAltitude, datastructure.LatLonWithAltitude) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	t := g.track(segment)
	a, b := t[segment.SegmentIdx], t[segment.SegmentIdx+1]
	if segment.Forward {
		return a, b
	}
	return b, a
}

func (g *Graph) GetJunction(segment datastructure.Segment, front bool) datastructure.LatLonWithAltitude {
	from, to := g.GetFromTo(segment)
	if front {
		return to
	}
	return from
}

func (g *Graph) CalcSegmentWeight(segment datastructure.Segment) datastructure.RouteWeight {
	from, to := g.GetFromTo(segment)
	return datastructure.NewRouteWeight(geo.DistanceOnEarth(from.GetLatLon(), to.GetLatLon()) / (g.speedKmH * 1000 / 3600))
}

func (g *Graph) GetEdgeList(segment datastructure.Segment, isOutgoing bool,
	ingoingWeight datastructure.RouteWeight) []datastructure.SegmentEdge {
	point := g.GetJunction(segment, isOutgoing).GetLatLon()

	g.mu.RLock()
	joint := g.joints[point]
	var targets []datastructure.Segment
	for _, tp := range joint {
		last := len(g.tracks[tp.trackID]) - 1
		var leaving []datastructure.Segment
		if isOutgoing {
			if tp.pointIdx < last {
				leaving = append(leaving, datastructure.NewSegment(datastructure.GuidesNumMwmID, tp.trackID, uint32(tp.pointIdx), true))
			}
			if tp.pointIdx > 0 {
				leaving = append(leaving, datastructure.NewSegment(datastructure.GuidesNumMwmID, tp.trackID, uint32(tp.pointIdx-1), false))
			}
		} else {
			if tp.pointIdx > 0 {
				leaving = append(leaving, datastructure.NewSegment(datastructure.GuidesNumMwmID, tp.trackID, uint32(tp.pointIdx-1), true))
			}
			if tp.pointIdx < last {
				leaving = append(leaving, datastructure.NewSegment(datastructure.GuidesNumMwmID, tp.trackID, uint32(tp.pointIdx), false))
			}
		}
		for _, s := range leaving {
			if s != segment && s != segment.GetReversed() {
				targets = append(targets, s)
			}
		}
	}
	g.mu.RUnlock()

	edges := make([]datastructure.SegmentEdge, 0, len(targets))
	for _, t := range targets {
		weight := ingoingWeight
		if isOutgoing {
			weight = g.CalcSegmentWeight(t)
		}
		edges = append(edges, datastructure.NewSegmentEdge(t, weight))
	}
	return edges
}

// FindNearbySegments returns forward guide segments within radiusM of point, closest first.
func (g *Graph) FindNearbySegments(point datastructure.Coordinate, radiusM float64, limit int) []datastructure.Segment {
	latSpan, lonSpan := geo.MetersToDegrees(point.Lat, radiusM)
	min := [2]float64{point.Lon - lonSpan, point.Lat - latSpan}
	max := [2]float64{point.Lon + lonSpan, point.Lat + latSpan}

	type candidate struct {
		segment datastructure.Segment
		dist    float64
	}
	var candidates []candidate

	g.mu.RLock()
	g.tree.Search(min, max, func(_, _ [2]float64, s datastructure.Segment) bool {
		t := g.tracks[s.FeatureID]
		a, b := t[s.SegmentIdx].GetLatLon(), t[s.SegmentIdx+1].GetLatLon()
		proj, _ := geo.ProjectPointToSegment(a, b, point)
		if d := geo.DistanceOnEarth(point, proj); d <= radiusM {
			candidates = append(candidates, candidate{segment: s, dist: d})
		}
		return true
	})
	g.mu.RUnlock()

	slices.SortFunc(candidates, func(a, b candidate) int {
		switch {
		case a.dist < b.dist:
			return -1
		case a.dist > b.dist:
			return 1
		default:
			return a.segment.Compare(b.segment)
		}
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	res := make([]datastructure.Segment, 0, len(candidates))
	for _, c := range candidates {
		res = append(res, c.segment)
	}
	return res
}

// IsOneWay is false for every track.
func (g *Graph) IsOneWay(mwmID datastructure.NumMwmID, featureID uint32) bool {
	return false
}
