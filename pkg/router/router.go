package router

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/organicmaps/organicmaps-sub003/pkg/config"
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/leaps"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routing"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routingalgorithm"
	"github.com/organicmaps/organicmaps-sub003/pkg/guides"
	"github.com/organicmaps/organicmaps-sub003/pkg/roadgraph"
	"github.com/organicmaps/organicmaps-sub003/pkg/snap"
)

// adjusted routes join the previous route within this travel time.
const adjustLimitS = 5 * 60.0

type Options struct {
	// subroutes with a straight line shorter than this are searched without leaps.
	LeapsThresholdKm     float64
	MaxPostProcessSteps  int
	UseAccessConditional bool
	GuidesSnapRadiusM    float64
	MaxProjections       int
}

func OptionsFromConfig(cfg config.RouterOptions) Options {
	return Options{
		LeapsThresholdKm:     cfg.LeapsThresholdKm,
		MaxPostProcessSteps:  cfg.MaxPostProcessSteps,
		UseAccessConditional: cfg.UseAccessConditional,
		GuidesSnapRadiusM:    cfg.SnapRadiusM,
		MaxProjections:       cfg.MaxProjections,
	}
}

/*
IndexRouter. answers route requests over the road index.

every pair of consecutive checkpoints is a subroute with its own starter. close subroutes are
searched on the full segment graph. far ones are searched on the leaps graph first, then every
leap is refined inside its mwm and the stitched path is cleaned by the leaps post processor.
*/
type IndexRouter struct {
	index        *roadgraph.RoadIndex
	estimator    *roadgraph.EdgeEstimator
	graphOptions roadgraph.GraphOptions
	snapper      *snap.RoadSnapper
	crossMwm     leaps.CrossMwmGraph
	penalty      leaps.CrossBorderPenalty
	guides       *guides.Graph
	regions      RegionsIndex
	sparse       routing.RegionsSparseGraph
	metrics      *Metrics
	options      Options
	logger       *zap.Logger
}

func NewIndexRouter(index *roadgraph.RoadIndex, estimator *roadgraph.EdgeEstimator, graphOptions roadgraph.GraphOptions,
	snapper *snap.RoadSnapper, options Options, logger *zap.Logger) *IndexRouter {
	return &IndexRouter{
		index:        index,
		estimator:    estimator,
		graphOptions: graphOptions,
		snapper:      snapper,
		options:      options,
		logger:       logger,
	}
}

// SetCrossMwm enables leaps. without it every subroute is searched on the full graph.
func (r *IndexRouter) SetCrossMwm(crossMwm leaps.CrossMwmGraph, penalty leaps.CrossBorderPenalty) {
	r.crossMwm = crossMwm
	r.penalty = penalty
}

func (r *IndexRouter) SetGuides(g *guides.Graph) {
	r.guides = g
}

func (r *IndexRouter) SetMetrics(m *Metrics) {
	r.metrics = m
}

func (r *IndexRouter) newGraph() *roadgraph.Graph {
	return roadgraph.NewGraph(r.index, r.estimator, r.graphOptions)
}

func (r *IndexRouter) newStarter(start, finish routing.FakeEnding, fakeNumerationStart uint32, strictForward bool,
	graph *roadgraph.Graph) *routing.IndexGraphStarter {
	starter := routing.NewIndexGraphStarter(start, finish, fakeNumerationStart, strictForward, graph)
	if r.guides != nil {
		starter.SetGuides(r.guides)
		r.connectGuidesToRoads(starter, graph)
	}
	starter.SetUseAccessConditional(r.options.UseAccessConditional)
	return starter
}

// Route computes a route through checkpoints in order.
func (r *IndexRouter) Route(ctx context.Context, checkpoints []datastructure.Coordinate) (*Route, error) {
	route, err := r.route(ctx, checkpoints)
	if err != nil {
		r.metrics.observeFailure(err)
		return nil, err
	}
	return route, nil
}

func (r *IndexRouter) route(ctx context.Context, checkpoints []datastructure.Coordinate) (*Route, error) {
	if len(checkpoints) < 2 {
		return nil, ErrTooFewCheckpoints
	}
	graph := r.newGraph()

	endings := make([]routing.FakeEnding, 0, len(checkpoints))
	for _, p := range checkpoints {
		ending, err := r.makeEnding(graph, p)
		if err != nil {
			return nil, err
		}
		endings = append(endings, ending)
	}

	route := &Route{Segmented: &SegmentedRoute{}}
	// the first subroute starter collects the fake graphs of all subroutes.
	var whole *routing.IndexGraphStarter
	for i := 0; i+1 < len(endings); i++ {
		fakeNumerationStart := uint32(0)
		if whole != nil {
			fakeNumerationStart = whole.GetNumFakeSegments()
		}
		starter := r.newStarter(endings[i], endings[i+1], fakeNumerationStart, false, graph)
		path, mode, err := r.calculateSubroute(ctx, starter, graph)
		if err != nil {
			return nil, fmt.Errorf("subroute %d: %w", i, err)
		}
		route.appendSubroute(r.redress(starter, path), mode)
		route.Segmented.appendSubroute(path, mode)

		if whole == nil {
			whole = starter
		} else {
			whole.Append(routing.NewFakeEdgesContainer(starter))
		}
	}
	route.Segmented.FakeEdges = routing.NewFakeEdgesContainer(whole)

	r.logger.Debug("route found", zap.Int("checkpoints", len(checkpoints)), zap.Float64("eta_s", route.ETA),
		zap.Float64("distance_m", route.DistanceM))
	return route, nil
}

// AdjustRequest is a new start on a route computed earlier. PassedIdx is the subroute the start
// is on, Bearing the heading at the start in degrees clockwise from north, if known.
type AdjustRequest struct {
	Start     datastructure.Coordinate
	Bearing   *float64
	PassedIdx int
}

// AdjustRoute rebuilds previous from a new start. a short search joins the subroute the start is
// on, the subroutes after it are kept so unpassed checkpoints stay on the route.
func (r *IndexRouter) AdjustRoute(ctx context.Context, req AdjustRequest, previous *SegmentedRoute) (*Route, error) {
	route, err := r.adjustRoute(ctx, req, previous)
	if err != nil {
		r.metrics.observeFailure(err)
		return nil, err
	}
	return route, nil
}

func (r *IndexRouter) adjustRoute(ctx context.Context, req AdjustRequest, previous *SegmentedRoute) (*Route, error) {
	if err := r.checkPreviousRoute(previous, req.PassedIdx); err != nil {
		return nil, err
	}
	graph := r.newGraph()
	graph.SetMode(datastructure.ModeNoLeaps)

	startEnding, strictForward, err := r.makeStartEnding(graph, req.Start, req.Bearing)
	if err != nil {
		return nil, err
	}
	starter := r.newStarter(startEnding, routing.FakeEnding{}, previous.FakeEdges.GetFakeNumerationEnd(),
		strictForward, graph)
	starter.Append(previous.FakeEdges)

	passed := previous.Subroutes[req.PassedIdx]
	prevEdges := make([]datastructure.SegmentEdge, 0, len(passed))
	for _, s := range passed {
		prevEdges = append(prevEdges, datastructure.NewSegmentEdge(s, starter.CalcSegmentWeight(s, datastructure.PurposeWeight)))
	}

	limit := datastructure.NewRouteWeight(adjustLimitS)
	begin := time.Now()
	res, err := routingalgorithm.AdjustRoute(ctx, starter, routingalgorithm.AdjustParams{
		Start:     starter.GetStartSegment(),
		PrevRoute: prevEdges,
		CheckLength: func(w datastructure.RouteWeight) bool {
			return w.LessOrEqual(limit) && starter.CheckLength(w)
		},
	})
	r.metrics.observeSubroute("Adjust", begin)
	if err != nil {
		if errors.Is(err, routingalgorithm.ErrNoPath) {
			return nil, fmt.Errorf("%w: previous route is not reachable in %.0f s: %v", ErrNoRoute, adjustLimitS, err)
		}
		return nil, err
	}

	route := &Route{Segmented: &SegmentedRoute{}}
	route.appendSubroute(r.redress(starter, res.Path), datastructure.ModeNoLeaps)
	route.Segmented.appendSubroute(res.Path, datastructure.ModeNoLeaps)
	for i := req.PassedIdx + 1; i < len(previous.Subroutes); i++ {
		route.appendSubroute(r.redress(starter, previous.Subroutes[i]), previous.Modes[i])
		route.Segmented.appendSubroute(previous.Subroutes[i], previous.Modes[i])
	}
	route.Segmented.FakeEdges = routing.NewFakeEdgesContainer(starter)

	r.logger.Debug("route adjusted", zap.Int("passed", req.PassedIdx), zap.Int("previous_steps", len(passed)),
		zap.Int("adjusted_steps", len(res.Path)), zap.Bool("strict_forward", strictForward))
	return route, nil
}

// checkPreviousRoute rejects routes whose segments are not in the loaded graphs.
func (r *IndexRouter) checkPreviousRoute(previous *SegmentedRoute, passedIdx int) error {
	if previous == nil || previous.FakeEdges == nil {
		return fmt.Errorf("%w: no previous route", ErrInvalidPreviousRoute)
	}
	if passedIdx < 0 || passedIdx >= len(previous.Subroutes) {
		return fmt.Errorf("%w: subroute %d of %d", ErrInvalidPreviousRoute, passedIdx, len(previous.Subroutes))
	}
	for _, s := range previous.realSegments() {
		if !r.hasSegment(s) {
			return fmt.Errorf("%w: unknown %s", ErrInvalidPreviousRoute, s)
		}
	}
	return nil
}

func (r *IndexRouter) hasSegment(s datastructure.Segment) bool {
	if s.IsGuides() {
		return r.guides != nil && r.guides.HasSegment(s)
	}
	road, ok := r.index.GetRoad(s.MwmID, s.FeatureID)
	return ok && int(s.SegmentIdx) < road.GetSegmentsCount()
}

// chooseMode picks leaps only when the endings are in mwms that are not neighbours and the
// straight line is long enough.
func (r *IndexRouter) chooseMode(starter *routing.IndexGraphStarter) datastructure.WorldGraphMode {
	registry := r.index.GetRegistry()
	if r.crossMwm == nil || registry == nil {
		return datastructure.ModeNoLeaps
	}
	if starter.GetStartToFinishDistanceM() < r.options.LeapsThresholdKm*1000 {
		return datastructure.ModeNoLeaps
	}
	for _, a := range starter.GetStartEnding().GetMwmIDs() {
		for _, b := range starter.GetFinishEnding().GetMwmIDs() {
			if a == b || registry.AreMwmsNear(a, b) {
				return datastructure.ModeNoLeaps
			}
		}
	}
	return datastructure.ModeLeapsOnly
}

func (r *IndexRouter) calculateSubroute(ctx context.Context, starter *routing.IndexGraphStarter,
	graph *roadgraph.Graph) ([]datastructure.Segment, datastructure.WorldGraphMode, error) {
	mode := r.chooseMode(starter)
	begin := time.Now()
	defer func() { r.metrics.observeSubroute(mode.String(), begin) }()

	r.logger.Debug("subroute mode chosen", zap.Stringer("mode", mode),
		zap.Float64("straight_m", starter.GetStartToFinishDistanceM()))
	if mode == datastructure.ModeLeapsOnly {
		path, err := r.findLeapsPath(ctx, starter, graph)
		return path, mode, err
	}

	graph.SetMode(datastructure.ModeNoLeaps)
	res, err := routingalgorithm.FindPath(ctx, starter, routingalgorithm.Params{
		Start:       starter.GetStartSegment(),
		Finish:      starter.GetFinishSegment(),
		CheckLength: starter.CheckLength,
	})
	if err != nil {
		if errors.Is(err, routingalgorithm.ErrNoPath) {
			return nil, mode, fmt.Errorf("%w: %v", ErrNoRoute, err)
		}
		return nil, mode, err
	}
	routing.CheckValidRoute(res.Path)
	return res.Path, mode, nil
}

func (r *IndexRouter) findLeapsPath(ctx context.Context, starter *routing.IndexGraphStarter,
	graph *roadgraph.Graph) ([]datastructure.Segment, error) {
	leapsGraph := leaps.NewLeapsGraph(starter, r.crossMwm, r.penalty)

	graph.SetMode(datastructure.ModeLeapsOnly)
	res, err := routingalgorithm.FindPath(ctx, leapsGraph, routingalgorithm.Params{
		Start:  leapsGraph.GetStartSegment(),
		Finish: leapsGraph.GetFinishSegment(),
	})
	graph.SetMode(datastructure.ModeNoLeaps)
	if err != nil {
		if errors.Is(err, routingalgorithm.ErrNoPath) {
			return nil, fmt.Errorf("%w: %v", ErrRouteNotFoundLeaps, err)
		}
		return nil, err
	}
	r.logger.Debug("leaps path found", zap.Int("leaps", len(res.Path)), zap.Int("visited", res.Visited))

	path, err := r.processLeapsJoints(ctx, starter, res.Path)
	if err != nil {
		return nil, err
	}
	routing.CheckValidRoute(path)
	return leaps.NewLeapsPostProcessor(path, starter, r.options.MaxPostProcessSteps).GetProcessedPath(), nil
}

// processLeapsJoints replaces every leap inside an mwm with the real path between its ends.
// a hop across a border joins adjacent segments and is kept as it is.
func (r *IndexRouter) processLeapsJoints(ctx context.Context, starter *routing.IndexGraphStarter,
	leapsPath []datastructure.Segment) ([]datastructure.Segment, error) {
	path := []datastructure.Segment{leapsPath[0]}
	for i := 1; i < len(leapsPath); i++ {
		from, to := leapsPath[i-1], leapsPath[i]
		if from.IsRealSegment() && to.IsRealSegment() && from.MwmID != to.MwmID {
			path = append(path, to)
			continue
		}

		allowed := make(map[datastructure.NumMwmID]struct{})
		for _, s := range []datastructure.Segment{from, to} {
			if s.IsRealSegment() {
				allowed[s.MwmID] = struct{}{}
			}
		}
		if len(allowed) == 0 {
			for _, id := range starter.GetMwms() {
				allowed[id] = struct{}{}
			}
		}

		res, err := routingalgorithm.FindPath(ctx, newMwmRestrictedGraph(starter, allowed), routingalgorithm.Params{
			Start:  from,
			Finish: to,
		})
		if err != nil {
			if errors.Is(err, routingalgorithm.ErrNoPath) {
				return nil, fmt.Errorf("%w: leap %s -> %s can not be refined", ErrRouteNotFoundLeaps, from, to)
			}
			return nil, err
		}
		path = append(path, res.Path[1:]...)
	}
	return path, nil
}

// mwmRestrictedGraph hides the real segments of mwms other than the allowed ones.
type mwmRestrictedGraph struct {
	*routing.IndexGraphStarter
	allowed map[datastructure.NumMwmID]struct{}
}

func newMwmRestrictedGraph(starter *routing.IndexGraphStarter, allowed map[datastructure.NumMwmID]struct{}) mwmRestrictedGraph {
	return mwmRestrictedGraph{IndexGraphStarter: starter, allowed: allowed}
}

func (g mwmRestrictedGraph) filter(edges []datastructure.SegmentEdge) []datastructure.SegmentEdge {
	res := edges[:0:0]
	for _, e := range edges {
		target := e.GetTarget()
		if _, ok := g.allowed[target.MwmID]; ok || !target.IsRealSegment() {
			res = append(res, e)
		}
	}
	return res
}

func (g mwmRestrictedGraph) GetOutgoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge {
	return g.filter(g.IndexGraphStarter.GetOutgoingEdgesList(vertexData))
}

func (g mwmRestrictedGraph) GetIngoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge {
	return g.filter(g.IndexGraphStarter.GetIngoingEdgesList(vertexData))
}
