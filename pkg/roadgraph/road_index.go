package roadgraph

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

var (
	ErrRoadTooShort   = errors.New("road must have at least two points")
	ErrNodeIDsMissing = errors.New("road node ids do not match its points")
)

/*
RoadIndex. immutable after loading: the roads of every mwm and the joints between them.

a joint is an osm node shared by several road points. roads are cut on mwm borders, so the
border node becomes a joint between roads of different mwms.
*/
type RoadIndex struct {
	mu            sync.RWMutex
	registry      *MwmRegistry
	roads         map[roadKey]*Road
	mwmRoads      map[datastructure.NumMwmID][]uint32
	mwmTopSpeed   map[datastructure.NumMwmID]float64
	joints        map[int64][]RoadPoint
	nextFeatureID uint32
}

func NewRoadIndex(registry *MwmRegistry) *RoadIndex {
	return &RoadIndex{
		registry:    registry,
		roads:       make(map[roadKey]*Road),
		mwmRoads:    make(map[datastructure.NumMwmID][]uint32),
		mwmTopSpeed: make(map[datastructure.NumMwmID]float64),
		joints:      make(map[int64][]RoadPoint),
	}
}

func (ri *RoadIndex) GetRegistry() *MwmRegistry {
	return ri.registry
}

// AddRoad cuts road into pieces lying in one mwm each and stores them.
// MwmID and FeatureID of road are ignored, the pieces get their own.
func (ri *RoadIndex) AddRoad(road Road) ([]*Road, error) {
	if len(road.Points) < 2 {
		return nil, ErrRoadTooShort
	}
	if len(road.NodeIDs) != len(road.Points) {
		return nil, fmt.Errorf("%w: %d ids for %d points", ErrNodeIDsMissing, len(road.NodeIDs), len(road.Points))
	}

	ri.mu.Lock()
	defer ri.mu.Unlock()

	var pieces []*Road
	begin := 0
	mwm := ri.segmentMwm(road, 0)
	for i := 1; i < road.GetSegmentsCount(); i++ {
		next := ri.segmentMwm(road, i)
		if next == mwm {
			continue
		}
		pieces = append(pieces, ri.addPiece(road, begin, i, mwm))
		begin, mwm = i, next
	}
	pieces = append(pieces, ri.addPiece(road, begin, road.GetSegmentsCount(), mwm))
	return pieces, nil
}

func (ri *RoadIndex) segmentMwm(road Road, segmentIdx int) datastructure.NumMwmID {
	if ri.registry == nil {
		return 0
	}
	a, b := road.Points[segmentIdx], road.Points[segmentIdx+1]
	mid := datastructure.NewCoordinate((a.Lat+b.Lat)/2, (a.Lon+b.Lon)/2)
	return ri.registry.GetOrCreateMwm(ri.registry.CellOf(mid))
}

// addPiece stores road points [begin, end] as a new road.
func (ri *RoadIndex) addPiece(road Road, begin, end int, mwm datastructure.NumMwmID) *Road {
	piece := road
	piece.MwmID = mwm
	piece.FeatureID = ri.nextFeatureID
	ri.nextFeatureID++
	piece.Points = slices.Clone(road.Points[begin : end+1])
	piece.NodeIDs = slices.Clone(road.NodeIDs[begin : end+1])

	ri.roads[roadKey{mwm, piece.FeatureID}] = &piece
	ri.mwmRoads[mwm] = append(ri.mwmRoads[mwm], piece.FeatureID)
	for i, nodeID := range piece.NodeIDs {
		ri.joints[nodeID] = append(ri.joints[nodeID], RoadPoint{MwmID: mwm, FeatureID: piece.FeatureID, PointIdx: i})
	}
	speed := piece.MaxSpeedKmH
	if speed <= 0 {
		speed = RoadTypeMaxSpeed(piece.HighwayType)
	}
	if speed > ri.mwmTopSpeed[mwm] {
		ri.mwmTopSpeed[mwm] = speed
	}
	return &piece
}

func (ri *RoadIndex) GetRoad(mwmID datastructure.NumMwmID, featureID uint32) (*Road, bool) {
	ri.mu.RLock()
	defer ri.mu.RUnlock()
	r, ok := ri.roads[roadKey{mwmID, featureID}]
	return r, ok
}

func (ri *RoadIndex) mustRoad(segment datastructure.Segment) *Road {
	r, ok := ri.GetRoad(segment.MwmID, segment.FeatureID)
	if !ok {
		panic(fmt.Sprintf("no road for %s", segment))
	}
	return r
}

func (ri *RoadIndex) GetJoint(nodeID int64) []RoadPoint {
	ri.mu.RLock()
	defer ri.mu.RUnlock()
	return ri.joints[nodeID]
}

// GetMwms returns every mwm holding roads in ascending order.
func (ri *RoadIndex) GetMwms() []datastructure.NumMwmID {
	ri.mu.RLock()
	defer ri.mu.RUnlock()
	ids := make([]datastructure.NumMwmID, 0, len(ri.mwmRoads))
	for id := range ri.mwmRoads {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (ri *RoadIndex) GetMwmRoads(mwmID datastructure.NumMwmID) []*Road {
	ri.mu.RLock()
	defer ri.mu.RUnlock()
	roads := make([]*Road, 0, len(ri.mwmRoads[mwmID]))
	for _, fid := range ri.mwmRoads[mwmID] {
		roads = append(roads, ri.roads[roadKey{mwmID, fid}])
	}
	return roads
}

// GetMwmTopSpeedKmH is the speed of the fastest road of the mwm.
func (ri *RoadIndex) GetMwmTopSpeedKmH(mwmID datastructure.NumMwmID) float64 {
	ri.mu.RLock()
	defer ri.mu.RUnlock()
	return ri.mwmTopSpeed[mwmID]
}

// GetSegments lists the directed segments of a road, backward ones only for two way roads.
func (ri *RoadIndex) GetSegments(road *Road) []datastructure.Segment {
	segments := make([]datastructure.Segment, 0, 2*road.GetSegmentsCount())
	for i := 0; i < road.GetSegmentsCount(); i++ {
		segments = append(segments, datastructure.NewSegment(road.MwmID, road.FeatureID, uint32(i), true))
		if !road.OneWay {
			segments = append(segments, datastructure.NewSegment(road.MwmID, road.FeatureID, uint32(i), false))
		}
	}
	return segments
}

func (ri *RoadIndex) RoadsCount() int {
	ri.mu.RLock()
	defer ri.mu.RUnlock()
	return len(ri.roads)
}
