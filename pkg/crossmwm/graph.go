package crossmwm

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

type ConnectorLoader interface {
	Get(mwmID datastructure.NumMwmID) (*Connector, error)
}

type LeapEstimator interface {
	CalcLeapWeight(from, to datastructure.Coordinate, mwmID datastructure.NumMwmID) datastructure.RouteWeight
}

// Graph serves the transitions of all mwms, loading connectors lazily.
// a missing connector is an mwm without neighbours.
type Graph struct {
	mu         sync.Mutex
	loader     ConnectorLoader
	estimator  LeapEstimator
	connectors map[datastructure.NumMwmID]*Connector
	logger     *zap.Logger
}

func NewGraph(loader ConnectorLoader, estimator LeapEstimator, logger *zap.Logger) *Graph {
	return &Graph{
		loader:     loader,
		estimator:  estimator,
		connectors: make(map[datastructure.NumMwmID]*Connector),
		logger:     logger,
	}
}

func (g *Graph) AddConnector(c *Connector) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.connectors[c.MwmID] = c
}

func (g *Graph) getConnector(mwmID datastructure.NumMwmID) *Connector {
	g.mu.Lock()
	defer g.mu.Unlock()
	if c, ok := g.connectors[mwmID]; ok {
		return c
	}

	c := NewConnector(mwmID)
	if g.loader != nil {
		loaded, err := g.loader.Get(mwmID)
		switch {
		case err == nil:
			c = loaded
		case errors.Is(err, ErrConnectorNotFound):
		default:
			g.logger.Error("load connector", zap.Uint16("mwm", uint16(mwmID)), zap.Error(err))
		}
	}
	g.connectors[mwmID] = c
	return c
}

func (g *Graph) IsTransition(segment datastructure.Segment, isOutgoing bool) bool {
	if !segment.IsRealSegment() {
		return false
	}
	return g.getConnector(segment.MwmID).IsTransition(segment, isOutgoing)
}

func (g *Graph) GetTwinsInner(segment datastructure.Segment, isOutgoing bool) []datastructure.Segment {
	return g.getConnector(segment.MwmID).GetTwins(segment, isOutgoing)
}

func (g *Graph) GetOutgoingEdgeList(segment datastructure.Segment) []datastructure.SegmentEdge {
	return g.getConnector(segment.MwmID).GetOutgoingEdgeList(segment)
}

func (g *Graph) GetIngoingEdgeList(segment datastructure.Segment) []datastructure.SegmentEdge {
	return g.getConnector(segment.MwmID).GetIngoingEdgeList(segment)
}

// GetWeightSure panics when to is not reachable from from inside their mwm.
func (g *Graph) GetWeightSure(from, to datastructure.Segment) datastructure.RouteWeight {
	if from.MwmID != to.MwmID {
		panic(fmt.Sprintf("inner weight between different mwms: %s %s", from, to))
	}
	w, ok := g.getConnector(from.MwmID).GetWeight(from, to)
	if !ok {
		panic(fmt.Sprintf("no inner weight from %s to %s", from, to))
	}
	return w
}

func (g *Graph) GetTransitions(mwmID datastructure.NumMwmID, isEnter bool) []datastructure.Segment {
	c := g.getConnector(mwmID)
	if isEnter {
		return c.GetEnters()
	}
	return c.GetExits()
}

func (g *Graph) CalcLeapWeight(from, to datastructure.Coordinate, mwmID datastructure.NumMwmID) datastructure.RouteWeight {
	return g.estimator.CalcLeapWeight(from, to, mwmID)
}
