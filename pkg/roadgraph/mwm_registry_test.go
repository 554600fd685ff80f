package roadgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uber/h3-go/v4"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

func TestMwmRegistry(t *testing.T) {
	r := NewMwmRegistry(5, 3)

	berlin := datastructure.NewCoordinate(52.52, 13.40)
	paris := datastructure.NewCoordinate(48.85, 2.35)

	_, ok := r.MwmOf(berlin)
	assert.False(t, ok)

	b := r.GetOrCreateMwm(r.CellOf(berlin))
	assert.Equal(t, b, r.GetOrCreateMwm(r.CellOf(berlin)))
	p := r.GetOrCreateMwm(r.CellOf(paris))
	assert.NotEqual(t, b, p)
	assert.Equal(t, 2, r.Count())

	got, ok := r.MwmOf(berlin)
	assert.True(t, ok)
	assert.Equal(t, b, got)

	t.Run("countries", func(t *testing.T) {
		bCountry, ok := r.GetCountryID(b)
		assert.True(t, ok)
		pCountry, _ := r.GetCountryID(p)
		assert.NotEqual(t, bCountry, pCountry)

		_, ok = r.GetCountryID(99)
		assert.False(t, ok)
	})

	t.Run("near", func(t *testing.T) {
		assert.True(t, r.AreMwmsNear(b, b))
		assert.False(t, r.AreMwmsNear(b, p))

		home := r.CellOf(berlin)
		for _, cell := range h3.GridDisk(home, 1) {
			if cell == home {
				continue
			}
			assert.True(t, r.AreMwmsNear(b, r.GetOrCreateMwm(cell)))
		}
	})

	assert.NotEmpty(t, r.GetMwmName(b))
	assert.Contains(t, r.GetMwmName(42), "unknown")
}
