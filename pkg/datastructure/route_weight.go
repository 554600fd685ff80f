package datastructure

import "fmt"

const (
	// penalties (seconds) used to fold policy counters into a single comparable value.
	passThroughPenaltyS       = 60.0 * 30
	accessPenaltyS            = 60.0 * 60 * 2
	accessConditionalPenaltyS = 60.0 * 15
)

/*
RouteWeight. additive and totally ordered cost of a path.

Weight is travel cost in seconds. the counters record how many times the path changed
between pass-through-allowed and pass-through-restricted roads, entered roads with
restricted access, or used a conditionally closed road.
*/
type RouteWeight struct {
	Weight                        float64 `json:"weight"`
	NumPassThroughChanges         int8    `json:"num_pass_through_changes"`
	NumAccessChanges              int8    `json:"num_access_changes"`
	NumAccessConditionalPenalties int8    `json:"num_access_conditional_penalties"`
	TransitTime                   float64 `json:"transit_time"`
}

func NewRouteWeight(weight float64) RouteWeight {
	return RouteWeight{Weight: weight}
}

func NewRouteWeightFull(weight float64, passThrough, access, accessConditional int8, transitTime float64) RouteWeight {
	return RouteWeight{
		Weight:                        weight,
		NumPassThroughChanges:         passThrough,
		NumAccessChanges:              access,
		NumAccessConditionalPenalties: accessConditional,
		TransitTime:                   transitTime,
	}
}

func ZeroRouteWeight() RouteWeight {
	return RouteWeight{}
}

func (w RouteWeight) GetWeight() float64 {
	return w.Weight
}

func (w RouteWeight) GetNumPassThroughChanges() int8 {
	return w.NumPassThroughChanges
}

func (w RouteWeight) Add(o RouteWeight) RouteWeight {
	return RouteWeight{
		Weight:                        w.Weight + o.Weight,
		NumPassThroughChanges:         w.NumPassThroughChanges + o.NumPassThroughChanges,
		NumAccessChanges:              w.NumAccessChanges + o.NumAccessChanges,
		NumAccessConditionalPenalties: w.NumAccessConditionalPenalties + o.NumAccessConditionalPenalties,
		TransitTime:                   w.TransitTime + o.TransitTime,
	}
}

func (w RouteWeight) Sub(o RouteWeight) RouteWeight {
	return RouteWeight{
		Weight:                        w.Weight - o.Weight,
		NumPassThroughChanges:         w.NumPassThroughChanges - o.NumPassThroughChanges,
		NumAccessChanges:              w.NumAccessChanges - o.NumAccessChanges,
		NumAccessConditionalPenalties: w.NumAccessConditionalPenalties - o.NumAccessConditionalPenalties,
		TransitTime:                   w.TransitTime - o.TransitTime,
	}
}

// Scale multiplies the continuous parts. counters are not fractional and stay as they are.
func (w RouteWeight) Scale(k float64) RouteWeight {
	return RouteWeight{
		Weight:                        w.Weight * k,
		NumPassThroughChanges:         w.NumPassThroughChanges,
		NumAccessChanges:              w.NumAccessChanges,
		NumAccessConditionalPenalties: w.NumAccessConditionalPenalties,
		TransitTime:                   w.TransitTime * k,
	}
}

func (w RouteWeight) Negate() RouteWeight {
	return ZeroRouteWeight().Sub(w)
}

// GetIntegratedWeight is linear in every component, so it keeps the order stable under addition.
func (w RouteWeight) GetIntegratedWeight() float64 {
	return w.Weight +
		float64(w.NumPassThroughChanges)*passThroughPenaltyS +
		float64(w.NumAccessChanges)*accessPenaltyS +
		float64(w.NumAccessConditionalPenalties)*accessConditionalPenaltyS
}

func (w RouteWeight) Less(o RouteWeight) bool {
	wi, oi := w.GetIntegratedWeight(), o.GetIntegratedWeight()
	if wi != oi {
		return wi < oi
	}
	return w.TransitTime < o.TransitTime
}

func (w RouteWeight) LessOrEqual(o RouteWeight) bool {
	return !o.Less(w)
}

func (w RouteWeight) IsZero() bool {
	return w == RouteWeight{}
}

func (w RouteWeight) String() string {
	return fmt.Sprintf("RouteWeight(%.3f, passThrough=%d, access=%d, accessConditional=%d, transit=%.3f)",
		w.Weight, w.NumPassThroughChanges, w.NumAccessChanges, w.NumAccessConditionalPenalties, w.TransitTime)
}
