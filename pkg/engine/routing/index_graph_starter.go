package routing

import (
	"fmt"
	"math"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/geo"
	"golang.org/x/exp/slices"
)

const (
	// mwm points are stored with this accuracy (degrees).
	kMwmPointAccuracy = 1e-5
	kEps              = 1e-6
)

type segmentSource uint8

const (
	sourceFake segmentSource = iota
	sourceGuides
	sourceRegions
	sourceReal
)

/*
IndexGraphStarter. graph view of a single routing request.

it owns the fake graph of the request (start stub, finish stub, projections and parts of real
segments) and answers edge and weight queries by dispatching every segment to the source that
owns it: the fake graph, the guides graph, the regions graph or the real world graph.

	start stub --> projection --> part of real ==> real graph ==> part of real --> projection --> finish stub
*/
type IndexGraphStarter struct {
	graph   WorldGraph
	guides  GuidesGraph
	regions RegionsSparseGraph
	fake    *FakeGraph

	start  Ending
	finish Ending
	// every ending added so far, used to reconcile projections onto shared segments.
	otherEndings []FakeEnding

	fakeNumerationStart    uint32
	startToFinishDistanceM float64
	useAccessConditional   bool
}

func NewIndexGraphStarter(startEnding, finishEnding FakeEnding, fakeNumerationStart uint32, strictForward bool,
	graph WorldGraph) *IndexGraphStarter {
	s := &IndexGraphStarter{
		graph:               graph,
		fake:                NewFakeGraph(),
		start:               NewEnding(),
		finish:              NewEnding(),
		fakeNumerationStart: fakeNumerationStart,
	}

	s.start.ID = s.fakeNumerationStart
	s.AddStart(startEnding, finishEnding, strictForward)
	s.finish.ID = s.fakeNumerationStart
	s.AddFinish(finishEnding, startEnding)

	s.otherEndings = append(s.otherEndings, startEnding, finishEnding)
	s.updateStartToFinishDistance()
	return s
}

func IsFakeSegment(segment datastructure.Segment) bool {
	return segment.IsFakeCreated()
}

func IsGuidesSegment(segment datastructure.Segment) bool {
	return segment.IsGuides()
}

// CheckValidRoute panics unless segments is start fake, at least one segment, finish fake.
func CheckValidRoute(segments []datastructure.Segment) {
	if len(segments) < 3 {
		panic(fmt.Sprintf("route must have at least 3 segments, got %d", len(segments)))
	}
	if !IsFakeSegment(segments[0]) {
		panic(fmt.Sprintf("route must start with a fake segment, got %s", segments[0]))
	}
	if !IsFakeSegment(segments[len(segments)-1]) {
		panic(fmt.Sprintf("route must finish with a fake segment, got %s", segments[len(segments)-1]))
	}
}

func (s *IndexGraphStarter) sourceOf(segment datastructure.Segment) segmentSource {
	switch {
	case IsFakeSegment(segment):
		return sourceFake
	case IsGuidesSegment(segment):
		return sourceGuides
	case s.IsRegionsGraphMode():
		return sourceRegions
	default:
		return sourceReal
	}
}

func (s *IndexGraphStarter) updateStartToFinishDistance() {
	startPoint := s.GetPoint(s.GetStartSegment(), false)
	finishPoint := s.GetPoint(s.GetFinishSegment(), true)
	s.startToFinishDistanceM = geo.DistanceOnEarth(startPoint, finishPoint)
}

// Append takes over the finish and the fake graph of a previous subroute.
func (s *IndexGraphStarter) Append(container *FakeEdgesContainer) {
	s.finish = container.finish.clone()
	s.fake.Append(container.fake)

	// the finish segment is known only after the fake graph is merged.
	s.updateStartToFinishDistance()
	s.fakeNumerationStart += uint32(container.fake.GetSize())
}

func (s *IndexGraphStarter) SetGuides(guides GuidesGraph) {
	s.guides = guides
}

func (s *IndexGraphStarter) SetRegionsGraphMode(regions RegionsSparseGraph) {
	s.regions = regions
	s.graph.SetRegionsGraphMode(true)
}

func (s *IndexGraphStarter) IsRegionsGraphMode() bool {
	return s.regions != nil
}

func (s *IndexGraphStarter) SetUseAccessConditional(use bool) {
	s.useAccessConditional = use
}

func (s *IndexGraphStarter) GetGraph() WorldGraph {
	return s.graph
}

func (s *IndexGraphStarter) GetStartSegment() datastructure.Segment {
	return datastructure.NewFakeSegment(s.start.ID)
}

func (s *IndexGraphStarter) GetFinishSegment() datastructure.Segment {
	return datastructure.NewFakeSegment(s.finish.ID)
}

func (s *IndexGraphStarter) GetStartEnding() Ending {
	return s.start
}

func (s *IndexGraphStarter) GetFinishEnding() Ending {
	return s.finish
}

func (s *IndexGraphStarter) GetStartJunction() datastructure.LatLonWithAltitude {
	return s.fake.GetVertex(s.GetStartSegment()).GetJunctionFrom()
}

func (s *IndexGraphStarter) GetFinishJunction() datastructure.LatLonWithAltitude {
	return s.fake.GetVertex(s.GetFinishSegment()).GetJunctionTo()
}

func (s *IndexGraphStarter) GetStartToFinishDistanceM() float64 {
	return s.startToFinishDistanceM
}

func (s *IndexGraphStarter) GetNumFakeSegments() uint32 {
	return uint32(s.fake.GetSize())
}

// ConvertToReal maps a PartOfReal segment to its real segment. real segments map to themselves.
func (s *IndexGraphStarter) ConvertToReal(segment datastructure.Segment) (datastructure.Segment, bool) {
	if !IsFakeSegment(segment) {
		return segment, true
	}
	return s.fake.FindReal(segment)
}

func (s *IndexGraphStarter) GetJunction(segment datastructure.Segment, front bool) datastructure.LatLonWithAltitude {
	switch s.sourceOf(segment) {
	case sourceGuides:
		return s.guides.GetJunction(segment, front)
	case sourceRegions:
		return s.regions.GetJunction(segment, front)
	case sourceReal:
		return s.graph.GetJunction(segment, front)
	}
	vertex := s.fake.GetVertex(segment)
	if front {
		return vertex.GetJunctionTo()
	}
	return vertex.GetJunctionFrom()
}

// GetRouteJunction returns route point pointIndex. route point i is the back of segment i,
// the last one is the front of the last segment.
func (s *IndexGraphStarter) GetRouteJunction(segments []datastructure.Segment, pointIndex int) datastructure.LatLonWithAltitude {
	if len(segments) == 0 {
		panic("route junction requested for an empty route")
	}
	if pointIndex < 0 || pointIndex > len(segments) {
		panic(fmt.Sprintf("point with index %d does not exist in route with size %d", pointIndex, len(segments)))
	}
	if pointIndex == len(segments) {
		return s.GetJunction(segments[pointIndex-1], true)
	}
	return s.GetJunction(segments[pointIndex], false)
}

func (s *IndexGraphStarter) GetPoint(segment datastructure.Segment, front bool) datastructure.Coordinate {
	return s.GetJunction(segment, front).GetLatLon()
}

func (s *IndexGraphStarter) IsRoutingOptionsGood(segment datastructure.Segment) bool {
	return s.graph.IsRoutingOptionsGood(segment)
}

func (s *IndexGraphStarter) GetRoutingOptions(segment datastructure.Segment) datastructure.RoutingOptions {
	if segment.IsRealSegment() {
		return s.graph.GetRoutingOptions(segment)
	}
	real, ok := s.fake.FindReal(segment)
	if !ok {
		return datastructure.RoadUsual
	}
	return s.graph.GetRoutingOptions(real)
}

// GetMwms returns the mwms of both endings in ascending order.
func (s *IndexGraphStarter) GetMwms() []datastructure.NumMwmID {
	set := make(map[datastructure.NumMwmID]struct{})
	for id := range s.start.MwmIDs {
		set[id] = struct{}{}
	}
	for id := range s.finish.MwmIDs {
		set[id] = struct{}{}
	}
	ids := make([]datastructure.NumMwmID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// CheckLength rejects weights with too many pass-through zone changes or too long for the
// direct start to finish distance. a start or finish inside a no pass-through zone relaxes the
// change budget by one each.
func (s *IndexGraphStarter) CheckLength(weight datastructure.RouteWeight) bool {
	changesAllowed := int8(2)
	if s.hasNoPassThroughAllowed(s.start) {
		changesAllowed++
	}
	if s.hasNoPassThroughAllowed(s.finish) {
		changesAllowed++
	}
	return weight.GetNumPassThroughChanges() <= changesAllowed &&
		s.graph.CheckLength(weight, s.startToFinishDistanceM)
}

func (s *IndexGraphStarter) hasNoPassThroughAllowed(ending Ending) bool {
	if s.IsRegionsGraphMode() {
		return false
	}
	for segment := range ending.Real {
		if IsGuidesSegment(segment) {
			continue
		}
		if !s.graph.IsPassThroughAllowed(segment.MwmID, segment.FeatureID) {
			return true
		}
	}
	return false
}

func (s *IndexGraphStarter) GetOutgoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge {
	return s.GetEdgesList(vertexData, true, s.useAccessConditional)
}

func (s *IndexGraphStarter) GetIngoingEdgesList(vertexData datastructure.VertexData) []datastructure.SegmentEdge {
	return s.GetEdgesList(vertexData, false, s.useAccessConditional)
}

// GetEdgesList lists the edges of vertexData.Vertex. an empty list means a dead end, e.g. a
// route point that was not projected anywhere.
func (s *IndexGraphStarter) GetEdgesList(vertexData datastructure.VertexData, isOutgoing,
	useAccessConditional bool) []datastructure.SegmentEdge {
	if s.graph.GetMode() == datastructure.ModeLeapsOnly {
		panic("segment edges requested in LeapsOnly mode")
	}

	segment := vertexData.Vertex
	// used only for ingoing lists: it is the weight of every ingoing edge of segment.
	var ingoingSegmentWeight datastructure.RouteWeight
	if !isOutgoing {
		ingoingSegmentWeight = s.CalcSegmentWeight(segment, datastructure.PurposeWeight)
	}

	var edges []datastructure.SegmentEdge
	switch s.sourceOf(segment) {
	case sourceFake:
		if real, ok := s.fake.FindReal(segment); ok {
			haveSameFront := s.GetJunction(segment, true) == s.GetJunction(real, true)
			haveSameBack := s.GetJunction(segment, false) == s.GetJunction(real, false)
			if (isOutgoing && haveSameFront) || (!isOutgoing && haveSameBack) {
				switch s.sourceOf(real) {
				case sourceGuides:
					edges = s.guides.GetEdgeList(real, isOutgoing, ingoingSegmentWeight)
				case sourceRegions:
					edges = s.regions.GetEdgeList(real, isOutgoing, s.GetPoint(segment, true))
				default:
					replaced := datastructure.NewVertexData(real, vertexData.RealDistance)
					edges = s.graph.GetEdgeList(replaced, isOutgoing, true, useAccessConditional)
				}
			}
		}

		for _, f := range s.fake.GetEdges(segment, isOutgoing) {
			weight := ingoingSegmentWeight
			if isOutgoing {
				weight = s.CalcSegmentWeight(f, datastructure.PurposeWeight)
			}
			edges = append(edges, datastructure.NewSegmentEdge(f, weight))
		}
	case sourceGuides:
		edges = s.guides.GetEdgeList(segment, isOutgoing, ingoingSegmentWeight)
	case sourceRegions:
		edges = s.regions.GetEdgeList(segment, isOutgoing, s.GetPoint(segment, true))
	default:
		edges = s.graph.GetEdgeList(vertexData, isOutgoing, true, useAccessConditional)
	}

	return s.addFakeEdges(segment, isOutgoing, edges)
}

// addFakeEdges appends the parts of real of every edge target whose ends touch segment.
func (s *IndexGraphStarter) addFakeEdges(segment datastructure.Segment, isOutgoing bool,
	edges []datastructure.SegmentEdge) []datastructure.SegmentEdge {
	var fakeEdges []datastructure.SegmentEdge
	for _, edge := range edges {
		for _, f := range s.fake.GetFake(edge.GetTarget()) {
			//     segment        f
			//  *------------>*----------->
			fIsOutgoing := s.GetJunction(segment, true) == s.GetJunction(f, false)

			//        f        segment
			//  *------------>*----------->
			fIsIngoing := s.GetJunction(f, true) == s.GetJunction(segment, false)

			if isOutgoing && fIsOutgoing {
				fakeEdges = append(fakeEdges, datastructure.NewSegmentEdge(f, s.CalcSegmentWeight(f, datastructure.PurposeWeight)))
			} else if !isOutgoing && fIsIngoing {
				// ingoing weight is the weight of segment, same for f and for the edge target.
				fakeEdges = append(fakeEdges, datastructure.NewSegmentEdge(f, edge.GetWeight()))
			}
		}
	}
	return append(edges, fakeEdges...)
}

func (s *IndexGraphStarter) calcGuidesSegmentWeight(segment datastructure.Segment, purpose datastructure.Purpose) datastructure.RouteWeight {
	if purpose == datastructure.PurposeWeight {
		return s.guides.CalcSegmentWeight(segment)
	}
	from, to := s.guides.GetFromTo(segment)
	return s.graph.CalcOffroadWeight(from.GetLatLon(), to.GetLatLon(), purpose)
}

func (s *IndexGraphStarter) CalcSegmentWeight(segment datastructure.Segment, purpose datastructure.Purpose) datastructure.RouteWeight {
	switch s.sourceOf(segment) {
	case sourceGuides:
		return s.calcGuidesSegmentWeight(segment, purpose)
	case sourceRegions:
		return s.regions.CalcSegmentWeight(segment)
	case sourceReal:
		return s.graph.CalcSegmentWeight(segment, purpose)
	}

	vertex := s.fake.GetVertex(segment)
	real, ok := s.fake.FindReal(segment)
	if !ok {
		return s.graph.CalcOffroadWeight(vertex.GetPointFrom(), vertex.GetPointTo(), purpose)
	}

	partLen := geo.DistanceOnEarth(vertex.GetPointFrom(), vertex.GetPointTo())
	if s.IsRegionsGraphMode() {
		return datastructure.NewRouteWeight(partLen)
	}

	// segments with equal ends have zero length.
	fullLen := geo.DistanceOnEarth(s.GetPoint(real, false), s.GetPoint(real, true))
	if fullLen == 0 {
		return datastructure.ZeroRouteWeight()
	}

	var weight datastructure.RouteWeight
	if IsGuidesSegment(real) {
		weight = s.calcGuidesSegmentWeight(real, purpose)
	} else {
		weight = s.graph.CalcSegmentWeight(real, purpose)
	}
	return weight.Scale(partLen / fullLen)
}

func (s *IndexGraphStarter) CalcSegmentETA(segment datastructure.Segment) float64 {
	return s.CalcSegmentWeight(segment, datastructure.PurposeETA).GetWeight()
}

// CalculateETA is the travel time of to when reached from from. fake weight and fake
// transit time are not distinguished.
func (s *IndexGraphStarter) CalculateETA(from, to datastructure.Segment) float64 {
	if IsFakeSegment(to) {
		return s.CalcSegmentETA(to)
	}
	if IsFakeSegment(from) {
		return s.CalculateETAWithoutPenalty(to)
	}

	if IsGuidesSegment(from) || IsGuidesSegment(to) {
		res := 0.0
		if IsGuidesSegment(from) {
			res += s.calcGuidesSegmentWeight(from, datastructure.PurposeETA).GetWeight()
		} else {
			res += s.CalculateETAWithoutPenalty(from)
		}
		if IsGuidesSegment(to) {
			res += s.calcGuidesSegmentWeight(to, datastructure.PurposeETA).GetWeight()
		} else {
			res += s.CalculateETAWithoutPenalty(to)
		}
		return res
	}

	if s.IsRegionsGraphMode() {
		return s.regions.CalcSegmentWeight(from).GetWeight() + s.regions.CalcSegmentWeight(to).GetWeight()
	}
	return s.graph.CalculateETA(from, to)
}

func (s *IndexGraphStarter) CalculateETAWithoutPenalty(segment datastructure.Segment) float64 {
	switch s.sourceOf(segment) {
	case sourceFake:
		return s.CalcSegmentETA(segment)
	case sourceGuides:
		return s.calcGuidesSegmentWeight(segment, datastructure.PurposeETA).GetWeight()
	case sourceRegions:
		return s.regions.CalcSegmentWeight(segment).GetWeight()
	default:
		return s.graph.CalculateETAWithoutPenalty(segment)
	}
}

func (s *IndexGraphStarter) HeuristicCostEstimate(from, to datastructure.Segment) datastructure.RouteWeight {
	return s.graph.HeuristicCostEstimate(s.GetPoint(from, true), s.GetPoint(to, true))
}

func (s *IndexGraphStarter) HeuristicCostEstimateToPoint(from datastructure.Segment, to datastructure.Coordinate) datastructure.RouteWeight {
	return s.graph.HeuristicCostEstimate(s.GetPoint(from, true), to)
}

// GetAStarWeightEpsilon covers float error plus the weight of kMwmPointAccuracy, as points of
// the same segment may differ by that much between mwm versions.
func (s *IndexGraphStarter) GetAStarWeightEpsilon() datastructure.RouteWeight {
	eps := datastructure.NewRouteWeight(kEps)
	return eps.Add(s.graph.HeuristicCostEstimate(datastructure.NewCoordinate(0, 0),
		datastructure.NewCoordinate(0, kMwmPointAccuracy)))
}

func (s *IndexGraphStarter) GetHighwayCategory(segment datastructure.Segment) datastructure.HighwayCategory {
	if IsFakeSegment(segment) {
		real, ok := s.fake.FindReal(segment)
		if !ok {
			return datastructure.CategoryUnknown
		}
		segment = real
	}
	hwType, ok := s.graph.GetHighwayType(segment)
	if !ok {
		return datastructure.CategoryUnknown
	}
	return hwType.Category()
}

func (s *IndexGraphStarter) AddStart(startEnding, finishEnding FakeEnding, strictForward bool) {
	s.addEnding(startEnding, finishEnding, true, strictForward)
	s.start.FillMwmIDs()
}

// AddFinish never restricts the finish to forward parts.
func (s *IndexGraphStarter) AddFinish(finishEnding, startEnding FakeEnding) {
	s.addEnding(finishEnding, startEnding, false, false)
	s.finish.FillMwmIDs()
}

func (s *IndexGraphStarter) getFakeSegmentAndIncr() datastructure.Segment {
	if s.fakeNumerationStart == math.MaxUint32 {
		panic("fake segment numeration overflow")
	}
	segment := datastructure.NewFakeSegment(s.fakeNumerationStart)
	s.fakeNumerationStart++
	return segment
}

func (s *IndexGraphStarter) addPureFakeStub(ending FakeEnding) datastructure.Segment {
	stub := s.getFakeSegmentAndIncr()
	s.fake.AddStandaloneVertex(stub, NewFakeVertex(datastructure.FakeNumMwmID, ending.OriginJunction,
		ending.OriginJunction, PureFake))
	return stub
}

// addProjection connects stub with the projection point: stub -> point for the start,
// point -> stub for the finish.
func (s *IndexGraphStarter) addProjection(stub datastructure.Segment, ending FakeEnding, projection Projection,
	isStart bool) datastructure.Segment {
	from, to := projection.Junction, ending.OriginJunction
	if isStart {
		from, to = ending.OriginJunction, projection.Junction
	}
	projectionSegment := s.getFakeSegmentAndIncr()
	s.fake.AddVertex(stub, projectionSegment, NewFakeVertex(projection.Segment.MwmID, from, to, PureFake),
		isStart, false, datastructure.Segment{})
	return projectionSegment
}

// reconcileBounds narrows the part of real when the other ending projects onto the same segment.
// equal distances collapse both bounds onto the other projection.
func reconcileBounds(projection Projection, otherJunction datastructure.LatLonWithAltitude) (
	front, back datastructure.LatLonWithAltitude) {
	front, back = projection.SegmentFront, projection.SegmentBack
	distBackToThis := geo.DistanceOnEarth(back.GetLatLon(), projection.Junction.GetLatLon())
	distBackToOther := geo.DistanceOnEarth(back.GetLatLon(), otherJunction.GetLatLon())
	switch {
	case distBackToThis < distBackToOther:
		front = otherJunction
	case distBackToOther < distBackToThis:
		back = otherJunction
	default:
		front, back = otherJunction, otherJunction
	}
	return front, back
}

// addPartsOfReal adds the forward part of projection.Segment covered from the projection point,
// and the backward one on the reversed segment when addBackward is set.
func (s *IndexGraphStarter) addPartsOfReal(projectionSegment datastructure.Segment, projection Projection,
	front, back datastructure.LatLonWithAltitude, isStart, addBackward bool) {
	forwardFrom, forwardTo := back, projection.Junction
	if isStart {
		forwardFrom, forwardTo = projection.Junction, front
	}
	forwardPartOfReal := NewFakeVertex(projection.Segment.MwmID, forwardFrom, forwardTo, PartOfReal)
	fakeForwardSegment, ok := s.fake.FindSegment(forwardPartOfReal)
	if !ok {
		fakeForwardSegment = s.getFakeSegmentAndIncr()
	}
	s.fake.AddVertex(projectionSegment, fakeForwardSegment, forwardPartOfReal, isStart, true, projection.Segment)

	if !addBackward {
		return
	}

	backwardSegment := projection.Segment.GetReversed()
	backwardFrom, backwardTo := front, projection.Junction
	if isStart {
		backwardFrom, backwardTo = projection.Junction, back
	}
	backwardPartOfReal := NewFakeVertex(backwardSegment.MwmID, backwardFrom, backwardTo, PartOfReal)
	fakeBackwardSegment, ok := s.fake.FindSegment(backwardPartOfReal)
	if !ok {
		fakeBackwardSegment = s.getFakeSegmentAndIncr()
	}
	s.fake.AddVertex(projectionSegment, fakeBackwardSegment, backwardPartOfReal, isStart, true, backwardSegment)
}

func (s *IndexGraphStarter) addEnding(thisEnding, otherEnding FakeEnding, isStart, strictForward bool) {
	// the direction of a shared segment does not matter.
	otherSegments := make(map[datastructure.Segment]datastructure.LatLonWithAltitude, 2*len(otherEnding.Projections))
	for _, p := range otherEnding.Projections {
		otherSegments[p.Segment] = p.Junction
		otherSegments[p.Segment.GetReversed()] = p.Junction
	}

	stub := s.addPureFakeStub(thisEnding)
	for _, projection := range thisEnding.Projections {
		if isStart {
			s.start.AddReal(projection.Segment)
		} else {
			s.finish.AddReal(projection.Segment)
		}

		projectionSegment := s.addProjection(stub, thisEnding, projection, isStart)

		front, back := projection.SegmentFront, projection.SegmentBack
		if otherJunction, ok := otherSegments[projection.Segment]; ok {
			front, back = reconcileBounds(projection, otherJunction)
		}
		s.addPartsOfReal(projectionSegment, projection, front, back, isStart, !strictForward && !projection.IsOneWay)
	}
}

// AddEnding adds an intermediate route point. it is reachable both as a start and as a finish
// and is reconciled against every ending added before.
func (s *IndexGraphStarter) AddEnding(thisEnding FakeEnding) {
	otherSegments := make(map[datastructure.Segment][]datastructure.LatLonWithAltitude)
	for _, ending := range s.otherEndings {
		for _, p := range ending.Projections {
			otherSegments[p.Segment] = append(otherSegments[p.Segment], p.Junction)
			otherSegments[p.Segment.GetReversed()] = append(otherSegments[p.Segment.GetReversed()], p.Junction)
		}
	}

	stub := s.addPureFakeStub(thisEnding)
	for _, isStart := range []bool{true, false} {
		for _, projection := range thisEnding.Projections {
			projectionSegment := s.addProjection(stub, thisEnding, projection, isStart)

			front, back := projection.SegmentFront, projection.SegmentBack
			if others, ok := otherSegments[projection.Segment]; ok {
				// the other projection nearest to the segment back.
				otherJunction := others[0]
				distBackToOther := math.Inf(1)
				for _, j := range others {
					if d := geo.DistanceOnEarth(back.GetLatLon(), j.GetLatLon()); d < distBackToOther {
						distBackToOther = d
						otherJunction = j
					}
				}
				front, back = reconcileBounds(projection, otherJunction)
			}
			s.addPartsOfReal(projectionSegment, projection, front, back, isStart, !projection.IsOneWay)
		}
	}

	s.otherEndings = append(s.otherEndings, thisEnding)
}
