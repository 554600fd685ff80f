package leaps

import (
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

const (
	CrossCountryPenaltyS = 60.0 * 60 * 2
	MwmCrossingPenaltyS  = 0.0
)

// CountryResolver maps an mwm to the country it belongs to.
type CountryResolver interface {
	GetCountryID(mwmID datastructure.NumMwmID) (uint64, bool)
}

// MwmHierarchyHandler charges crossing a country border more than crossing an mwm border.
// mwms with an unknown country are treated as being in the same country.
type MwmHierarchyHandler struct {
	countries            CountryResolver
	crossCountryPenaltyS float64
	mwmCrossingPenaltyS  float64
}

func NewMwmHierarchyHandler(countries CountryResolver, crossCountryPenaltyS, mwmCrossingPenaltyS float64) *MwmHierarchyHandler {
	return &MwmHierarchyHandler{
		countries:            countries,
		crossCountryPenaltyS: crossCountryPenaltyS,
		mwmCrossingPenaltyS:  mwmCrossingPenaltyS,
	}
}

func (h *MwmHierarchyHandler) HasCrossBorderPenalty(from, to datastructure.NumMwmID) bool {
	if from == to || h.countries == nil {
		return false
	}
	fromCountry, ok := h.countries.GetCountryID(from)
	if !ok {
		return false
	}
	toCountry, ok := h.countries.GetCountryID(to)
	if !ok {
		return false
	}
	return fromCountry != toCountry
}

func (h *MwmHierarchyHandler) GetCrossBorderPenalty(from, to datastructure.NumMwmID) datastructure.RouteWeight {
	if from == to {
		return datastructure.ZeroRouteWeight()
	}
	if h.HasCrossBorderPenalty(from, to) {
		return datastructure.NewRouteWeight(h.crossCountryPenaltyS)
	}
	return datastructure.NewRouteWeight(h.mwmCrossingPenaltyS)
}
