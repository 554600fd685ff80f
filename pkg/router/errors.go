package router

import "errors"

var (
	ErrNoRoute            = errors.New("route not found")
	ErrPointNotProjected  = errors.New("route point can not be projected onto a road")
	ErrRouteNotFoundLeaps = errors.New("route not found over mwm transitions")
	ErrTooFewCheckpoints  = errors.New("route needs at least two checkpoints")
	ErrRegionsUnavailable = errors.New("regions graph is not loaded")

	ErrInvalidPreviousRoute = errors.New("previous route does not fit the road graph")
)
