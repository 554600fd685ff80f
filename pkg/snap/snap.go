package snap

import (
	"errors"
	"math"

	"github.com/dhconnelly/rtreego"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/geo"
	"github.com/organicmaps/organicmaps-sub003/pkg/roadgraph"
)

const (
	DefaultSnapRadiusM    = 300.0
	DefaultMaxProjections = 4

	// rtreego rejects zero sized rectangles.
	minRectSpanDeg = 1e-9
)

var ErrNoRoadNearby = errors.New("no road segment near point")

type roadSegment struct {
	segment datastructure.Segment
	from    datastructure.Coordinate
	to      datastructure.Coordinate
	bounds  rtreego.Rect
}

func (r *roadSegment) Bounds() rtreego.Rect {
	return r.bounds
}

// Candidate. a road segment near the query point with its projection.
type Candidate struct {
	Segment    datastructure.Segment    `json:"segment"`
	Projection datastructure.Coordinate `json:"projection"`
	DistM      float64                  `json:"dist_m"`
}

type RoadSnapper struct {
	rtree          *rtreego.Rtree
	radiusM        float64
	maxProjections int
	logger         *zap.Logger
}

func NewRoadSnapper(radiusM float64, maxProjections int, logger *zap.Logger) *RoadSnapper {
	if radiusM <= 0 {
		radiusM = DefaultSnapRadiusM
	}
	if maxProjections <= 0 {
		maxProjections = DefaultMaxProjections
	}
	return &RoadSnapper{
		rtree:          rtreego.NewTree(2, 25, 50),
		radiusM:        radiusM,
		maxProjections: maxProjections,
		logger:         logger,
	}
}

func newRect(a, b datastructure.Coordinate) rtreego.Rect {
	minLon, minLat := math.Min(a.Lon, b.Lon), math.Min(a.Lat, b.Lat)
	spanLon := math.Max(math.Abs(a.Lon-b.Lon), minRectSpanDeg)
	spanLat := math.Max(math.Abs(a.Lat-b.Lat), minRectSpanDeg)
	rect, err := rtreego.NewRect(rtreego.Point{minLon, minLat}, []float64{spanLon, spanLat})
	if err != nil {
		panic(err)
	}
	return rect
}

// BuildRoadSnapper inserts the forward segment of every road in the index.
func (rs *RoadSnapper) BuildRoadSnapper(index *roadgraph.RoadIndex) {
	inserted := 0
	for _, mwm := range index.GetMwms() {
		for _, road := range index.GetMwmRoads(mwm) {
			for i := 0; i+1 < road.GetPointsCount(); i++ {
				from, to := road.Points[i].GetLatLon(), road.Points[i+1].GetLatLon()
				rs.rtree.Insert(&roadSegment{
					segment: datastructure.NewSegment(road.MwmID, road.FeatureID, uint32(i), true),
					from:    from,
					to:      to,
					bounds:  newRect(from, to),
				})
				inserted++
				if inserted%100000 == 0 {
					rs.logger.Debug("inserting road segments to r-tree", zap.Int("count", inserted))
				}
			}
		}
	}
	rs.logger.Info("road snapper built", zap.Int("segments", inserted))
}

func (rs *RoadSnapper) Size() int {
	return rs.rtree.Size()
}

// SnapToRoads returns the nearest segments within the snap radius, at most one per road feature,
// closest first.
func (rs *RoadSnapper) SnapToRoads(p datastructure.Coordinate) ([]Candidate, error) {
	return rs.SnapToRoadsWithinRadius(p, rs.radiusM, rs.maxProjections)
}

func (rs *RoadSnapper) SnapToRoadsWithinRadius(p datastructure.Coordinate, radiusM float64, k int) ([]Candidate, error) {
	latSpan, lonSpan := geo.MetersToDegrees(p.Lat, radiusM)
	bound := newRect(
		datastructure.NewCoordinate(p.Lat-latSpan, p.Lon-lonSpan),
		datastructure.NewCoordinate(p.Lat+latSpan, p.Lon+lonSpan),
	)

	best := make(map[[2]uint32]Candidate)
	for _, obj := range rs.rtree.SearchIntersect(bound) {
		rsg := obj.(*roadSegment)
		proj, _ := geo.ProjectPointToSegment(rsg.from, rsg.to, p)
		dist := geo.DistanceOnEarth(p, proj)
		if dist > radiusM {
			continue
		}
		key := [2]uint32{uint32(rsg.segment.MwmID), rsg.segment.FeatureID}
		if old, ok := best[key]; ok && !closer(dist, rsg.segment, old) {
			continue
		}
		best[key] = Candidate{Segment: rsg.segment, Projection: proj, DistM: dist}
	}
	if len(best) == 0 {
		return nil, ErrNoRoadNearby
	}

	candidates := make([]Candidate, 0, len(best))
	for _, c := range best {
		candidates = append(candidates, c)
	}
	slices.SortFunc(candidates, func(a, b Candidate) int {
		if closer(a.DistM, a.Segment, b) {
			return -1
		}
		if closer(b.DistM, b.Segment, a) {
			return 1
		}
		return 0
	})
	if k > 0 && len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates, nil
}

func closer(dist float64, segment datastructure.Segment, o Candidate) bool {
	if dist != o.DistM {
		return dist < o.DistM
	}
	return segment.Less(o.Segment)
}

func Segments(candidates []Candidate) []datastructure.Segment {
	res := make([]datastructure.Segment, 0, len(candidates))
	for _, c := range candidates {
		res = append(res, c.Segment)
	}
	return res
}
