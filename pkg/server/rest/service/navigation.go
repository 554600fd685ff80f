package service

import (
	"context"
	"encoding/base64"
	"errors"

	"go.uber.org/zap"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routingalgorithm"
	"github.com/organicmaps/organicmaps-sub003/pkg/router"
	"github.com/organicmaps/organicmaps-sub003/pkg/snap"
	"github.com/organicmaps/organicmaps-sub003/pkg/util"
)

type Router interface {
	Route(ctx context.Context, checkpoints []datastructure.Coordinate) (*router.Route, error)
	AdjustRoute(ctx context.Context, req router.AdjustRequest, previous *router.SegmentedRoute) (*router.Route, error)
	FindMwms(ctx context.Context, start, finish datastructure.Coordinate) ([]datastructure.NumMwmID, error)
}

type Snapper interface {
	SnapToRoadsWithinRadius(p datastructure.Coordinate, radiusM float64, k int) ([]snap.Candidate, error)
}

type NavigationService struct {
	router  Router
	snapper Snapper
	logger  *zap.Logger
}

func NewNavigationService(r Router, snapper Snapper, logger *zap.Logger) *NavigationService {
	return &NavigationService{
		router:  r,
		snapper: snapper,
		logger:  logger,
	}
}

// ShortestPath returns the route through checkpoints and a token that AdjustRoute accepts.
func (s *NavigationService) ShortestPath(ctx context.Context, checkpoints []datastructure.Coordinate) (*router.Route, string, error) {
	route, err := s.router.Route(ctx, checkpoints)
	if err != nil {
		return nil, "", s.wrapRouteError(err, "shortest path")
	}
	token, err := encodeRouteToken(route.Segmented)
	if err != nil {
		return nil, "", util.WrapErrorf(err, util.ErrInternalServerError, "encode route token")
	}
	return route, token, nil
}

// AdjustRoute continues a route issued earlier from a new start point.
func (s *NavigationService) AdjustRoute(ctx context.Context, req router.AdjustRequest, token string) (*router.Route, string, error) {
	previous, err := decodeRouteToken(token)
	if err != nil {
		return nil, "", util.WrapErrorf(err, util.ErrBadParamInput, "invalid route token")
	}
	route, err := s.router.AdjustRoute(ctx, req, previous)
	if err != nil {
		return nil, "", s.wrapRouteError(err, "adjust route")
	}
	newToken, err := encodeRouteToken(route.Segmented)
	if err != nil {
		return nil, "", util.WrapErrorf(err, util.ErrInternalServerError, "encode route token")
	}
	return route, newToken, nil
}

func (s *NavigationService) NearestRoadSegments(ctx context.Context, lat, lon, radiusM float64, k int) ([]snap.Candidate, error) {
	candidates, err := s.snapper.SnapToRoadsWithinRadius(datastructure.NewCoordinate(lat, lon), radiusM, k)
	if errors.Is(err, snap.ErrNoRoadNearby) {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "no road segment within %.1f m", radiusM)
	}
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "nearest road segments")
	}
	return candidates, nil
}

func (s *NavigationService) FindMwms(ctx context.Context, start, finish datastructure.Coordinate) ([]datastructure.NumMwmID, error) {
	mwms, err := s.router.FindMwms(ctx, start, finish)
	if err != nil {
		return nil, s.wrapRouteError(err, "find mwms")
	}
	return mwms, nil
}

func (s *NavigationService) wrapRouteError(err error, op string) error {
	switch {
	case errors.Is(err, router.ErrTooFewCheckpoints), errors.Is(err, router.ErrPointNotProjected),
		errors.Is(err, router.ErrInvalidPreviousRoute):
		return util.WrapErrorf(err, util.ErrBadParamInput, op)
	case errors.Is(err, router.ErrNoRoute), errors.Is(err, router.ErrRouteNotFoundLeaps),
		errors.Is(err, router.ErrRegionsUnavailable):
		return util.WrapErrorf(err, util.ErrNotFound, op)
	case errors.Is(err, routingalgorithm.ErrCancelled):
		s.logger.Warn("route search cancelled", zap.String("op", op), zap.Error(err))
		return util.WrapErrorf(err, util.ErrConflict, op)
	default:
		s.logger.Error("route search failed", zap.String("op", op), zap.Error(err))
		return util.WrapErrorf(err, util.ErrInternalServerError, op)
	}
}

func encodeRouteToken(r *router.SegmentedRoute) (string, error) {
	if r == nil {
		return "", nil
	}
	data, err := r.MarshalBinary()
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

func decodeRouteToken(token string) (*router.SegmentedRoute, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	r := &router.SegmentedRoute{}
	if err := r.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return r, nil
}
