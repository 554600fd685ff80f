package leaps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCrossBorderPenalty(t *testing.T) {
	countries := testCountries{1: 10, 2: 10, 3: 20}
	h := NewMwmHierarchyHandler(countries, CrossCountryPenaltyS, 30)

	t.Run("same mwm is free", func(t *testing.T) {
		assert.True(t, h.GetCrossBorderPenalty(1, 1).IsZero())
	})

	t.Run("same country", func(t *testing.T) {
		assert.False(t, h.HasCrossBorderPenalty(1, 2))
		assert.Equal(t, 30.0, h.GetCrossBorderPenalty(1, 2).GetWeight())
	})

	t.Run("other country", func(t *testing.T) {
		assert.True(t, h.HasCrossBorderPenalty(2, 3))
		assert.Equal(t, CrossCountryPenaltyS, h.GetCrossBorderPenalty(2, 3).GetWeight())
	})

	t.Run("unknown country", func(t *testing.T) {
		assert.False(t, h.HasCrossBorderPenalty(1, 77))
	})

	t.Run("no resolver", func(t *testing.T) {
		h := NewMwmHierarchyHandler(nil, CrossCountryPenaltyS, MwmCrossingPenaltyS)
		assert.True(t, h.GetCrossBorderPenalty(1, 3).IsZero())
	})
}
