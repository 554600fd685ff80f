package osmparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"go.uber.org/zap"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/roadgraph"
)

type Format uint8

const (
	FormatPBF Format = iota
	FormatXML
)

type nodeCoord struct {
	lat float64
	lon float64
	ele int16
}

/*
OsmParser. reads an osm extract in two passes.

the first pass collects the nodes used by routable ways, the second stores their coordinates and
turns every routable way into roads. a way is cut at barrier nodes: the piece after a barrier
starts from a copy of the barrier node that no other road shares, so the barrier can not be passed.
*/
type OsmParser struct {
	wayNodes      map[int64]struct{}
	acceptedNodes map[int64]nodeCoord
	barrierNodes  map[int64]struct{}
	nextFakeNode  int64
	logger        *zap.Logger
}

func NewOSMParser(logger *zap.Logger) *OsmParser {
	return &OsmParser{
		wayNodes:      make(map[int64]struct{}),
		acceptedNodes: make(map[int64]nodeCoord),
		barrierNodes:  make(map[int64]struct{}),
		nextFakeNode:  -1,
		logger:        logger,
	}
}

func newScanner(ctx context.Context, r io.Reader, format Format) osm.Scanner {
	if format == FormatXML {
		return osmxml.New(ctx, r)
	}
	// must not be parallel, ways are read in file order.
	return osmpbf.New(ctx, r, 1)
}

func FormatOf(path string) Format {
	if strings.HasSuffix(path, ".osm") || strings.HasSuffix(path, ".xml") {
		return FormatXML
	}
	return FormatPBF
}

func (p *OsmParser) ParseFile(ctx context.Context, path string) ([]roadgraph.Road, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open osm file %s: %w", path, err)
	}
	defer f.Close()
	return p.Parse(ctx, f, FormatOf(path))
}

func (p *OsmParser) Parse(ctx context.Context, r io.ReadSeeker, format Format) ([]roadgraph.Road, error) {
	scanner := newScanner(ctx, r, format)
	countWays := 0
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || len(way.Nodes) < 2 || !acceptOsmWay(way) {
			continue
		}
		if (countWays+1)%50000 == 0 {
			p.logger.Info("reading openstreetmap ways", zap.Int("count", countWays+1))
		}
		countWays++
		for _, n := range way.Nodes {
			p.wayNodes[int64(n.ID)] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("failed to scan osm ways: %w", err)
	}
	scanner.Close()

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind osm file: %w", err)
	}

	roads := make([]roadgraph.Road, 0, countWays)
	scanner = newScanner(ctx, r, format)
	defer scanner.Close()
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			p.processNode(o)
		case *osm.Way:
			if len(o.Nodes) < 2 || !acceptOsmWay(o) {
				continue
			}
			wayRoads, err := p.processWay(o)
			if err != nil {
				p.logger.Warn("skipping osm way", zap.Int64("way_id", int64(o.ID)), zap.Error(err))
				continue
			}
			roads = append(roads, wayRoads...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan osm nodes and ways: %w", err)
	}

	p.logger.Info("openstreetmap parsed", zap.Int("ways", countWays), zap.Int("nodes", len(p.acceptedNodes)),
		zap.Int("roads", len(roads)))
	return roads, nil
}

func (p *OsmParser) processNode(node *osm.Node) {
	id := int64(node.ID)
	if _, ok := p.wayNodes[id]; !ok {
		return
	}
	p.acceptedNodes[id] = nodeCoord{lat: node.Lat, lon: node.Lon, ele: parseAltitude(node)}
	if isBarrier(node) {
		p.barrierNodes[id] = struct{}{}
	}
}

// processWay returns the roads of way, points ordered in the drivable direction for one way roads.
func (p *OsmParser) processWay(way *osm.Way) ([]roadgraph.Road, error) {
	highway := highwayType(way)
	maxSpeed, err := parseMaxSpeed(way.Tags.Find("maxspeed"))
	if err != nil {
		return nil, err
	}
	if maxSpeed == 0 {
		maxSpeed = roadgraph.RoadTypeMaxSpeed(highway)
	}
	dir := wayDirection(way)

	nodeIDs := make([]int64, 0, len(way.Nodes))
	for _, n := range way.Nodes {
		id := int64(n.ID)
		if _, ok := p.acceptedNodes[id]; !ok {
			return nil, fmt.Errorf("way %d references unknown node %d", way.ID, id)
		}
		if len(nodeIDs) > 0 && nodeIDs[len(nodeIDs)-1] == id {
			continue
		}
		nodeIDs = append(nodeIDs, id)
	}
	if dir.oneWay && !dir.forward {
		for i, j := 0, len(nodeIDs)-1; i < j; i, j = i+1, j-1 {
			nodeIDs[i], nodeIDs[j] = nodeIDs[j], nodeIDs[i]
		}
	}

	template := roadgraph.Road{
		OneWay:             dir.oneWay,
		PassThroughAllowed: passThroughAllowed(way),
		HighwayType:        highway,
		MaxSpeedKmH:        maxSpeed,
		Options:            routingOptions(way, highway),
		AccessConditional:  accessConditional(way),
		Name:               way.Tags.Find("name"),
	}

	var roads []roadgraph.Road
	piece := make([]int64, 0, len(nodeIDs))
	for i, id := range nodeIDs {
		piece = append(piece, id)
		_, barrier := p.barrierNodes[id]
		if !barrier || i == 0 || i == len(nodeIDs)-1 {
			continue
		}
		if len(piece) > 1 {
			roads = append(roads, p.makeRoad(template, piece))
		}
		piece = []int64{p.nextFakeNode}
		p.acceptedNodes[p.nextFakeNode] = p.acceptedNodes[id]
		p.nextFakeNode--
	}
	if len(piece) > 1 {
		roads = append(roads, p.makeRoad(template, piece))
	}
	return roads, nil
}

func (p *OsmParser) makeRoad(template roadgraph.Road, nodeIDs []int64) roadgraph.Road {
	road := template
	road.NodeIDs = append([]int64(nil), nodeIDs...)
	road.Points = make([]datastructure.LatLonWithAltitude, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		c := p.acceptedNodes[id]
		road.Points = append(road.Points, datastructure.NewLatLonWithAltitude(c.lat, c.lon, c.ele))
	}
	return road
}
