package datastructure

import (
	"github.com/twpayne/go-polyline"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// LatLonWithAltitude is a road point. altitude in meters.
type LatLonWithAltitude struct {
	Coordinate
	Altitude int16 `json:"altitude"`
}

func NewLatLonWithAltitude(lat, lon float64, altitude int16) LatLonWithAltitude {
	return LatLonWithAltitude{
		Coordinate: NewCoordinate(lat, lon),
		Altitude:   altitude,
	}
}

func (p LatLonWithAltitude) GetLatLon() Coordinate {
	return p.Coordinate
}

func CreatePolyline(path []Coordinate) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

func DecodePolyline(encoded string) ([]Coordinate, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	path := make([]Coordinate, 0, len(coords))
	for _, c := range coords {
		path = append(path, NewCoordinate(c[0], c[1]))
	}
	return path, nil
}
