package router

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routing"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routingalgorithm"
	"github.com/organicmaps/organicmaps-sub003/pkg/geo"
)

// RegionsIndex finds the regions segments around a point.
type RegionsIndex interface {
	GetNearestTransitions(point datastructure.Coordinate) ([]datastructure.Segment, error)
}

func (r *IndexRouter) SetRegions(index RegionsIndex, sparse routing.RegionsSparseGraph) {
	r.regions = index
	r.sparse = sparse
}

type regionsEndingGraph struct {
	routing.RegionsSparseGraph
}

// regions segments are directed transitions.
func (regionsEndingGraph) IsOneWay(datastructure.NumMwmID, uint32) bool {
	return true
}

func (r *IndexRouter) makeRegionsEnding(point datastructure.Coordinate) (routing.FakeEnding, error) {
	segments, err := r.regions.GetNearestTransitions(point)
	if err != nil {
		return routing.FakeEnding{}, fmt.Errorf("%w: %.6f,%.6f: %v", ErrPointNotProjected, point.Lat, point.Lon, err)
	}

	dist := make(map[datastructure.Segment]float64, len(segments))
	for _, s := range segments {
		proj, _ := geo.ProjectPointToSegment(r.sparse.GetJunction(s, false).GetLatLon(),
			r.sparse.GetJunction(s, true).GetLatLon(), point)
		dist[s] = geo.DistanceOnEarth(point, proj)
	}
	slices.SortFunc(segments, func(a, b datastructure.Segment) int {
		switch {
		case dist[a] < dist[b]:
			return -1
		case dist[a] > dist[b]:
			return 1
		default:
			return a.Compare(b)
		}
	})
	if limit := r.options.MaxProjections; limit > 0 && len(segments) > limit {
		segments = segments[:limit]
	}
	return routing.MakeFakeEnding(segments, point, regionsEndingGraph{r.sparse}), nil
}

// FindMwms searches the regions sparse graph and returns the mwms a route from start to finish
// would pass, in ascending order. it needs no road data, only the preprocessed transitions.
func (r *IndexRouter) FindMwms(ctx context.Context, start, finish datastructure.Coordinate) ([]datastructure.NumMwmID, error) {
	if r.regions == nil || r.sparse == nil {
		return nil, ErrRegionsUnavailable
	}
	startEnding, err := r.makeRegionsEnding(start)
	if err != nil {
		return nil, err
	}
	finishEnding, err := r.makeRegionsEnding(finish)
	if err != nil {
		return nil, err
	}

	graph := r.newGraph()
	starter := routing.NewIndexGraphStarter(startEnding, finishEnding, 0, false, graph)
	starter.SetRegionsGraphMode(r.sparse)

	// weights are meters here, the length check is for seconds.
	res, err := routingalgorithm.FindPath(ctx, starter, routingalgorithm.Params{
		Start:  starter.GetStartSegment(),
		Finish: starter.GetFinishSegment(),
	})
	if err != nil {
		if errors.Is(err, routingalgorithm.ErrNoPath) {
			return nil, fmt.Errorf("%w: %v", ErrNoRoute, err)
		}
		return nil, err
	}

	set := make(map[datastructure.NumMwmID]struct{})
	for _, id := range starter.GetMwms() {
		set[id] = struct{}{}
	}
	for _, s := range res.Path {
		if real, ok := starter.ConvertToReal(s); ok && real.IsRealSegment() {
			set[real.MwmID] = struct{}{}
		}
	}
	mwms := make([]datastructure.NumMwmID, 0, len(set))
	for id := range set {
		mwms = append(mwms, id)
	}
	slices.Sort(mwms)
	if registry := r.index.GetRegistry(); registry != nil {
		names := make([]string, 0, len(mwms))
		for _, id := range mwms {
			names = append(names, registry.GetMwmName(id))
		}
		r.logger.Debug("mwms found", zap.Strings("mwms", names))
	}
	return mwms, nil
}
