package geo

import (
	"testing"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/stretchr/testify/assert"
)

func TestProjectPointToSegment(t *testing.T) {
	a := datastructure.NewCoordinate(47.667324, -122.118989)
	b := datastructure.NewCoordinate(47.667338, -122.121784)

	proj, ratio := ProjectPointToSegment(a, b, datastructure.NewCoordinate(47.667347, -122.120561))
	assert.InDelta(t, 47.66733, proj.Lat, 1e-4)
	assert.InDelta(t, -122.120561, proj.Lon, 1e-5)
	assert.InDelta(t, 0.5625, ratio, 0.01)

	t.Run("clamped to ends", func(t *testing.T) {
		p, r := ProjectPointToSegment(a, b, datastructure.NewCoordinate(47.6673, -122.110))
		assert.Equal(t, 0.0, r)
		assert.InDelta(t, a.Lon, p.Lon, 1e-9)
	})

	t.Run("degenerate segment", func(t *testing.T) {
		p, r := ProjectPointToSegment(a, a, b)
		assert.Equal(t, a, p)
		assert.Equal(t, 0.0, r)
	})
}

func TestDistanceOnEarth(t *testing.T) {
	a := datastructure.NewCoordinate(0, 0)
	b := datastructure.NewCoordinate(0, 1)
	// one degree of longitude on the equator
	assert.InDelta(t, 111195.0, DistanceOnEarth(a, b), 10)
	assert.Equal(t, 0.0, DistanceOnEarth(a, a))
	assert.InDelta(t, DistanceOnEarth(a, b)/1000, CalculateHaversineDistance(0, 0, 0, 1), 0.01)

	lat, lon := GetDestinationPoint(0, 0, 90, 111.195)
	assert.InDelta(t, 0, lat, 1e-6)
	assert.InDelta(t, 1, lon, 1e-3)

	assert.InDelta(t, 0, PointLinePerpendicularDistance(a, b, datastructure.NewCoordinate(0, 0.5)), 1e-3)
	assert.InDelta(t, 111195.0, PointLinePerpendicularDistance(a, b, datastructure.NewCoordinate(1, 0.5)), 50)
}
