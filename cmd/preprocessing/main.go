package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/organicmaps/organicmaps-sub003/pkg/config"
	"github.com/organicmaps/organicmaps-sub003/pkg/crossmwm"
	"github.com/organicmaps/organicmaps-sub003/pkg/logger"
	"github.com/organicmaps/organicmaps-sub003/pkg/osmparser"
	"github.com/organicmaps/organicmaps-sub003/pkg/regions"
	"github.com/organicmaps/organicmaps-sub003/pkg/roadgraph"
)

var (
	configFile = flag.String("config", "", "yaml config file, defaults are used when empty")
	mapFile    = flag.String("f", "", "openstreetmap file (.osm.pbf or .osm), overrides data.osm")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	workers    = flag.Int("workers", runtime.NumCPU(), "number of connector build workers")
)

// preprocessing builds the cross mwm connectors (pebble) and the regions transition graph (badger)
// the engine reads at startup.
func main() {
	flag.Parse()
	if *cpuprofile != "" {
		// ./bin/preprocessing -cpuprofile=cpu.prof
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *mapFile != "" {
		cfg.Data.OSM = *mapFile
	}
	lg, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatal("preprocessing failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, lg *zap.Logger) error {
	lg.Info("reading osm file", zap.String("path", cfg.Data.OSM))
	roads, err := osmparser.NewOSMParser(lg).ParseFile(ctx, cfg.Data.OSM)
	if err != nil {
		return err
	}

	index := roadgraph.NewRoadIndex(roadgraph.NewMwmRegistry(cfg.Tiles.Resolution, cfg.Tiles.CountryResolution))
	for _, road := range roads {
		if _, err := index.AddRoad(road); err != nil {
			lg.Warn("skipping road", zap.String("name", road.Name), zap.Error(err))
		}
	}
	graph := roadgraph.NewGraph(index, roadgraph.NewEdgeEstimator(0, cfg.Router.OffroadSpeedKmH), roadgraph.GraphOptions{})

	lg.Info("building connectors", zap.Int("mwms", len(index.GetMwms())), zap.Int("workers", *workers))
	connectors, err := crossmwm.NewBuilder(graph, lg).BuildAll(ctx, index.GetMwms(), *workers)
	if err != nil {
		return err
	}

	var (
		wg                   sync.WaitGroup
		storeErr, regionsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		store, err := crossmwm.OpenStore(cfg.Data.CrossMwmDB, false)
		if err != nil {
			storeErr = err
			return
		}
		defer store.Close()
		storeErr = store.PutBatch(connectors)
	}()
	go func() {
		defer wg.Done()
		kv, err := regions.OpenKVDB(cfg.Data.RegionsDB, false, cfg.Tiles.RegionsResolution, lg)
		if err != nil {
			regionsErr = err
			return
		}
		defer kv.Close()
		records := regions.BuildRecords(connectors, graph)
		lg.Info("saving regions graph", zap.Int("transitions", len(records)))
		regionsErr = kv.SaveRecords(ctx, records)
	}()
	wg.Wait()

	if storeErr != nil {
		return storeErr
	}
	if regionsErr != nil {
		return regionsErr
	}
	lg.Info("preprocessing done", zap.Int("connectors", len(connectors)))
	return nil
}
