package crossmwm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/organicmaps/organicmaps-sub003/pkg/concurrent"
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/routingalgorithm"
	"github.com/organicmaps/organicmaps-sub003/pkg/roadgraph"
)

// Builder finds the transitions of mwms and the weights between them.
type Builder struct {
	graph  *roadgraph.Graph
	logger *zap.Logger
}

func NewBuilder(graph *roadgraph.Graph, logger *zap.Logger) *Builder {
	return &Builder{graph: graph, logger: logger}
}

func (b *Builder) BuildConnector(ctx context.Context, mwmID datastructure.NumMwmID) (*Connector, error) {
	c := NewConnector(mwmID)
	index := b.graph.GetIndex()
	for _, road := range index.GetMwmRoads(mwmID) {
		for _, segment := range index.GetSegments(road) {
			vd := datastructure.NewVertexData(segment, datastructure.ZeroRouteWeight())
			for _, edge := range b.graph.GetOutgoingEdgesList(vd) {
				if edge.Target.MwmID != mwmID {
					c.AddExit(segment, edge.Target)
				}
			}
			for _, edge := range b.graph.GetIngoingEdgesList(vd) {
				if edge.Target.MwmID != mwmID {
					c.AddEnter(segment, edge.Target)
				}
			}
		}
	}
	c.sortTwins()

	exits := c.GetExits()
	inMwm := func(s datastructure.Segment) bool {
		return s.MwmID == mwmID
	}
	for _, enter := range c.GetEnters() {
		tree, err := routingalgorithm.ShortestPathTree(ctx, b.graph, enter, inMwm)
		if err != nil {
			return nil, fmt.Errorf("inner weights of mwm %d: %w", mwmID, err)
		}
		for _, exit := range exits {
			if w, ok := tree[exit]; ok {
				c.SetWeight(enter, exit, w)
			}
		}
	}
	return c, nil
}

type buildResult struct {
	connector *Connector
	err       error
}

// BuildAll builds the connectors of mwms on numWorkers goroutines.
func (b *Builder) BuildAll(ctx context.Context, mwms []datastructure.NumMwmID, numWorkers int) ([]*Connector, error) {
	workers := concurrent.NewWorkerPool[concurrent.BuildConnectorParam, buildResult](numWorkers, len(mwms))
	for _, mwm := range mwms {
		workers.AddJob(concurrent.NewBuildConnectorParam(mwm))
	}
	workers.Close()
	workers.Start(func(job concurrent.BuildConnectorParam) buildResult {
		c, err := b.BuildConnector(ctx, job.MwmID)
		return buildResult{connector: c, err: err}
	})
	workers.Wait()

	byMwm := make(map[datastructure.NumMwmID]*Connector, len(mwms))
	var firstErr error
	for res := range workers.CollectResults() {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		byMwm[res.connector.MwmID] = res.connector
		b.logger.Debug("connector built",
			zap.Uint16("mwm", uint16(res.connector.MwmID)),
			zap.Int("enters", len(res.connector.enters)),
			zap.Int("exits", len(res.connector.exits)))
	}
	if firstErr != nil {
		return nil, firstErr
	}

	connectors := make([]*Connector, 0, len(mwms))
	for _, mwm := range mwms {
		connectors = append(connectors, byMwm[mwm])
	}
	return connectors, nil
}
