package regions

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/geo"
)

const DefaultCacheSize = 1 << 14

type RecordLoader interface {
	GetRecord(segment datastructure.Segment) (SegmentRecord, error)
}

/*
SparseGraph. coarse graph over border crossings, usable without the road data of the mwms.

weights are geodesic distances in meters: an edge to target costs the distance from the
requesting point to the front of target.
*/
type SparseGraph struct {
	loader RecordLoader
	cache  *lru.Cache[datastructure.Segment, SegmentRecord]
	logger *zap.Logger
}

func NewSparseGraph(loader RecordLoader, cacheSize int, logger *zap.Logger) (*SparseGraph, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[datastructure.Segment, SegmentRecord](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("regions cache: %w", err)
	}
	return &SparseGraph{loader: loader, cache: cache, logger: logger}, nil
}

func (g *SparseGraph) getRecord(segment datastructure.Segment) (SegmentRecord, bool) {
	if r, ok := g.cache.Get(segment); ok {
		return r, true
	}
	r, err := g.loader.GetRecord(segment)
	if err != nil {
		g.logger.Debug("regions record", zap.Stringer("segment", segment), zap.Error(err))
		return SegmentRecord{}, false
	}
	g.cache.Add(segment, r)
	return r, true
}

func (g *SparseGraph) mustRecord(segment datastructure.Segment) SegmentRecord {
	r, ok := g.getRecord(segment)
	if !ok {
		panic(fmt.Sprintf("segment %s is not in the regions graph", segment))
	}
	return r
}

func (g *SparseGraph) Contains(segment datastructure.Segment) bool {
	_, ok := g.getRecord(segment)
	return ok
}

func (g *SparseGraph) GetEdgeList(segment datastructure.Segment, isOutgoing bool,
	prevPoint datastructure.Coordinate) []datastructure.SegmentEdge {
	r, ok := g.getRecord(segment)
	if !ok {
		return nil
	}
	var edges []datastructure.SegmentEdge
	for _, target := range r.GetNeighbours(isOutgoing) {
		tr, ok := g.getRecord(target)
		if !ok {
			continue
		}
		w := geo.DistanceOnEarth(prevPoint, tr.GetJunction(true).GetLatLon())
		edges = append(edges, datastructure.NewSegmentEdge(target, datastructure.NewRouteWeight(w)))
	}
	return edges
}

func (g *SparseGraph) CalcSegmentWeight(segment datastructure.Segment) datastructure.RouteWeight {
	return datastructure.NewRouteWeight(g.mustRecord(segment).LengthM)
}

func (g *SparseGraph) GetJunction(segment datastructure.Segment, front bool) datastructure.LatLonWithAltitude {
	return g.mustRecord(segment).GetJunction(front)
}

// IsOneWay is always true: every crossing is stored with its direction.
func (g *SparseGraph) IsOneWay(mwmID datastructure.NumMwmID, featureID uint32) bool {
	return true
}
