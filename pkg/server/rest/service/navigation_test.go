package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routing"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routingalgorithm"
	"github.com/organicmaps/organicmaps-sub003/pkg/router"
	"github.com/organicmaps/organicmaps-sub003/pkg/snap"
	"github.com/organicmaps/organicmaps-sub003/pkg/util"
)

type fakeRouter struct {
	err      error
	req      router.AdjustRequest
	previous *router.SegmentedRoute
}

// newSegmentedRoute is a single subroute between two unprojected stubs, fake 0 and fake 1.
func newSegmentedRoute() *router.SegmentedRoute {
	start := routing.FakeEnding{OriginJunction: datastructure.NewLatLonWithAltitude(0, 0, 0)}
	finish := routing.FakeEnding{OriginJunction: datastructure.NewLatLonWithAltitude(0, 0.001, 0)}
	return &router.SegmentedRoute{
		Subroutes: [][]datastructure.Segment{{
			datastructure.NewFakeSegment(0), datastructure.NewSegment(0, 1, 0, true), datastructure.NewFakeSegment(1),
		}},
		Modes:     []datastructure.WorldGraphMode{datastructure.ModeNoLeaps},
		FakeEdges: routing.NewFakeEdgesContainer(routing.NewIndexGraphStarter(start, finish, 0, false, nil)),
	}
}

func (f *fakeRouter) Route(ctx context.Context, checkpoints []datastructure.Coordinate) (*router.Route, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &router.Route{Points: checkpoints, Segmented: newSegmentedRoute()}, nil
}

func (f *fakeRouter) AdjustRoute(ctx context.Context, req router.AdjustRequest,
	previous *router.SegmentedRoute) (*router.Route, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.req = req
	f.previous = previous
	return &router.Route{Points: []datastructure.Coordinate{req.Start}, Segmented: newSegmentedRoute()}, nil
}

func (f *fakeRouter) FindMwms(ctx context.Context, start, finish datastructure.Coordinate) ([]datastructure.NumMwmID, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []datastructure.NumMwmID{3}, nil
}

type fakeSnapper struct {
	err error
}

func (f fakeSnapper) SnapToRoadsWithinRadius(p datastructure.Coordinate, radiusM float64, k int) ([]snap.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []snap.Candidate{{Projection: p}}, nil
}

func TestRouteToken(t *testing.T) {
	r := &fakeRouter{}
	svc := NewNavigationService(r, fakeSnapper{}, zap.NewNop())
	checkpoints := []datastructure.Coordinate{datastructure.NewCoordinate(0, 0), datastructure.NewCoordinate(0, 0.001)}

	_, token, err := svc.ShortestPath(context.Background(), checkpoints)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	req := router.AdjustRequest{Start: datastructure.NewCoordinate(0, 0.0005)}
	route, next, err := svc.AdjustRoute(context.Background(), req, token)
	require.NoError(t, err)
	assert.NotEmpty(t, next)
	assert.Equal(t, req.Start, route.Points[0])
	assert.Equal(t, req, r.req)
	require.NotNil(t, r.previous)
	expected := newSegmentedRoute()
	assert.Equal(t, expected.Subroutes, r.previous.Subroutes)
	assert.Equal(t, expected.Modes, r.previous.Modes)
	assert.True(t, expected.FakeEdges.Equal(r.previous.FakeEdges))

	for _, bad := range []string{"%%%", "bm90IGEgc25hcHNob3Q"} {
		_, _, err = svc.AdjustRoute(context.Background(), req, bad)
		assert.Equal(t, util.ErrBadParamInput, util.CodeOf(err), bad)
	}

	t.Run("steps outside the fake graph", func(t *testing.T) {
		broken := newSegmentedRoute()
		broken.Subroutes[0][2] = datastructure.NewFakeSegment(9)
		data, err := broken.MarshalBinary()
		require.NoError(t, err)

		_, _, err = svc.AdjustRoute(context.Background(), req, base64.RawURLEncoding.EncodeToString(data))
		assert.ErrorIs(t, err, router.ErrInvalidPreviousRoute)
		assert.Equal(t, util.ErrBadParamInput, util.CodeOf(err))
	})
}

func TestErrorCodes(t *testing.T) {
	cases := []struct {
		err  error
		code util.ErrorCode
	}{
		{router.ErrTooFewCheckpoints, util.ErrBadParamInput},
		{fmt.Errorf("%w: 5,5", router.ErrPointNotProjected), util.ErrBadParamInput},
		{fmt.Errorf("subroute 0: %w", router.ErrNoRoute), util.ErrNotFound},
		{router.ErrRouteNotFoundLeaps, util.ErrNotFound},
		{router.ErrRegionsUnavailable, util.ErrNotFound},
		{fmt.Errorf("%w: unknown segment", router.ErrInvalidPreviousRoute), util.ErrBadParamInput},
		{fmt.Errorf("%w: context canceled", routingalgorithm.ErrCancelled), util.ErrConflict},
		{fmt.Errorf("boom"), util.ErrInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			svc := NewNavigationService(&fakeRouter{err: tc.err}, fakeSnapper{}, zap.NewNop())

			_, _, err := svc.ShortestPath(context.Background(), nil)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.code, util.CodeOf(err))

			_, err = svc.FindMwms(context.Background(), datastructure.Coordinate{}, datastructure.Coordinate{})
			assert.Equal(t, tc.code, util.CodeOf(err))
		})
	}
}

func TestNearestRoadSegments(t *testing.T) {
	svc := NewNavigationService(&fakeRouter{}, fakeSnapper{}, zap.NewNop())
	candidates, err := svc.NearestRoadSegments(context.Background(), 1, 2, 50, 1)
	require.NoError(t, err)
	assert.Equal(t, datastructure.NewCoordinate(1, 2), candidates[0].Projection)

	svc = NewNavigationService(&fakeRouter{}, fakeSnapper{err: snap.ErrNoRoadNearby}, zap.NewNop())
	_, err = svc.NearestRoadSegments(context.Background(), 1, 2, 50, 1)
	assert.Equal(t, util.ErrNotFound, util.CodeOf(err))
}
