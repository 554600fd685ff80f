package routing

import (
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/geo"
)

// Projection of a route point onto one nearby real segment.
type Projection struct {
	Segment      datastructure.Segment            `json:"segment"`
	IsOneWay     bool                             `json:"is_one_way"`
	SegmentFront datastructure.LatLonWithAltitude `json:"segment_front"`
	SegmentBack  datastructure.LatLonWithAltitude `json:"segment_back"`
	Junction     datastructure.LatLonWithAltitude `json:"junction"`
}

func NewProjection(segment datastructure.Segment, isOneWay bool, segmentFront, segmentBack,
	junction datastructure.LatLonWithAltitude) Projection {
	return Projection{
		Segment:      segment,
		IsOneWay:     isOneWay,
		SegmentFront: segmentFront,
		SegmentBack:  segmentBack,
		Junction:     junction,
	}
}

// FakeEnding is a raw route point with its projections.
type FakeEnding struct {
	OriginJunction datastructure.LatLonWithAltitude `json:"origin_junction"`
	Projections    []Projection                     `json:"projections"`
}

func (e FakeEnding) HasProjections() bool {
	return len(e.Projections) > 0
}

// MakeFakeEnding projects point onto every segment. the origin altitude is the average of the
// projected altitudes.
func MakeFakeEnding(segments []datastructure.Segment, point datastructure.Coordinate, graph EndingGraph) FakeEnding {
	ending := FakeEnding{
		Projections: make([]Projection, 0, len(segments)),
	}

	averageAltitude := 0.0
	for i, segment := range segments {
		oneWay := graph.IsOneWay(segment.MwmID, segment.FeatureID)
		backJunction := graph.GetJunction(segment, false)
		frontJunction := graph.GetJunction(segment, true)

		projectedPoint, ratio := geo.ProjectPointToSegment(backJunction.GetLatLon(), frontJunction.GetLatLon(), point)
		projectedAltitude := geo.InterpolateAltitude(backJunction, frontJunction, ratio)

		averageAltitude = (float64(i)*averageAltitude + float64(projectedAltitude)) / float64(i+1)
		ending.Projections = append(ending.Projections, NewProjection(segment, oneWay, frontJunction, backJunction,
			datastructure.LatLonWithAltitude{Coordinate: projectedPoint, Altitude: projectedAltitude}))
	}

	ending.OriginJunction = datastructure.LatLonWithAltitude{Coordinate: point, Altitude: int16(averageAltitude)}
	return ending
}
