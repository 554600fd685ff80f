package geo

import (
	"github.com/golang/geo/s2"
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

func toS2(c datastructure.Coordinate) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(c.Lat, c.Lon))
}

func fromS2(p s2.Point) datastructure.Coordinate {
	ll := s2.LatLngFromPoint(p)
	return datastructure.NewCoordinate(ll.Lat.Degrees(), ll.Lng.Degrees())
}

// ProjectPointToSegment returns the closest point to p on the great circle arc a-b and the
// fraction of the arc length from a to that point (0 for a, 1 for b).
func ProjectPointToSegment(a, b, p datastructure.Coordinate) (datastructure.Coordinate, float64) {
	if a == b {
		return a, 0
	}
	aS2, bS2 := toS2(a), toS2(b)
	projection := s2.Project(toS2(p), aS2, bS2)

	full := aS2.Distance(bS2).Radians()
	if full == 0 {
		return a, 0
	}
	ratio := aS2.Distance(projection).Radians() / full
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	return fromS2(projection), ratio
}

// PointLinePerpendicularDistance is the distance in meters from p to the arc a-b.
func PointLinePerpendicularDistance(a, b, p datastructure.Coordinate) float64 {
	if a == b {
		return DistanceOnEarth(a, p)
	}
	return s2.DistanceFromSegment(toS2(p), toS2(a), toS2(b)).Radians() * earthRadiusM
}

// InterpolateAltitude linearly interpolates the altitude between two road points.
func InterpolateAltitude(back, front datastructure.LatLonWithAltitude, ratio float64) int16 {
	return back.Altitude + int16(float64(front.Altitude-back.Altitude)*ratio)
}
