package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

const (
	earthRadiusKM = 6371.0
	earthRadiusM  = 6371008.8
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func radiansToDegree(angle float64) float64 {
	return angle * (180.0 / math.Pi)
}

// CalculateHaversineDistance returns the distance in km.
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = degreeToRadians(latOne)
	longOne = degreeToRadians(longOne)
	latTwo = degreeToRadians(latTwo)
	longTwo = degreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

// DistanceOnEarth returns the great circle distance in meters.
func DistanceOnEarth(a, b datastructure.Coordinate) float64 {
	if a == b {
		return 0
	}
	angle := s2.LatLngFromDegrees(a.Lat, a.Lon).Distance(s2.LatLngFromDegrees(b.Lat, b.Lon))
	return angle.Radians() * earthRadiusM
}

// GetDestinationPoint moves from (lat, lon) by dist km along bearing (degrees).
func GetDestinationPoint(lat, lon, bearing, dist float64) (float64, float64) {
	latRad := degreeToRadians(lat)
	lonRad := degreeToRadians(lon)
	bearingRad := degreeToRadians(bearing)
	angular := dist / earthRadiusKM

	newLat := math.Asin(math.Sin(latRad)*math.Cos(angular) +
		math.Cos(latRad)*math.Sin(angular)*math.Cos(bearingRad))
	newLon := lonRad + math.Atan2(math.Sin(bearingRad)*math.Sin(angular)*math.Cos(latRad),
		math.Cos(angular)-math.Sin(latRad)*math.Sin(newLat))
	return radiansToDegree(newLat), radiansToDegree(newLon)
}

// GetInitialBearing is the bearing (degrees clockwise from north, in [0, 360)) from a towards b.
func GetInitialBearing(a, b datastructure.Coordinate) float64 {
	latOne, latTwo := degreeToRadians(a.Lat), degreeToRadians(b.Lat)
	dLon := degreeToRadians(b.Lon - a.Lon)

	y := math.Sin(dLon) * math.Cos(latTwo)
	x := math.Cos(latOne)*math.Sin(latTwo) - math.Sin(latOne)*math.Cos(latTwo)*math.Cos(dLon)
	return math.Mod(radiansToDegree(math.Atan2(y, x))+360, 360)
}

// MetersToDegrees is a conservative degree span for a radius around lat.
func MetersToDegrees(lat, meters float64) (float64, float64) {
	latSpan := radiansToDegree(meters / earthRadiusM)
	cosLat := math.Cos(degreeToRadians(lat))
	if cosLat < 1e-6 {
		cosLat = 1e-6
	}
	return latSpan, latSpan / cosLat
}
