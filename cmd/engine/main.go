package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/organicmaps/organicmaps-sub003/docs"
	"github.com/organicmaps/organicmaps-sub003/pkg/config"
	"github.com/organicmaps/organicmaps-sub003/pkg/crossmwm"
	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
	"github.com/organicmaps/organicmaps-sub003/pkg/engine/leaps"
	"github.com/organicmaps/organicmaps-sub003/pkg/guides"
	"github.com/organicmaps/organicmaps-sub003/pkg/logger"
	"github.com/organicmaps/organicmaps-sub003/pkg/osmparser"
	"github.com/organicmaps/organicmaps-sub003/pkg/regions"
	"github.com/organicmaps/organicmaps-sub003/pkg/roadgraph"
	"github.com/organicmaps/organicmaps-sub003/pkg/router"
	"github.com/organicmaps/organicmaps-sub003/pkg/server/rest"
	"github.com/organicmaps/organicmaps-sub003/pkg/server/rest/service"
	"github.com/organicmaps/organicmaps-sub003/pkg/snap"
)

var (
	configFile = flag.String("config", "", "yaml config file, defaults are used when empty")
	mapFile    = flag.String("f", "", "openstreetmap file (.osm.pbf or .osm), overrides data.osm")
)

//	@title			organicmaps route graph API
//	@version		1.0
//	@description	road routing over mwm tiles with cross mwm leaps

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

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

	if err := run(cfg, lg); err != nil {
		lg.Fatal("engine stopped", zap.Error(err))
	}
}

func run(cfg config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
	lg.Info("road index ready", zap.Int("roads", index.RoadsCount()), zap.Int("mwms", len(index.GetMwms())))

	estimator := roadgraph.NewEdgeEstimator(0, cfg.Router.OffroadSpeedKmH)
	graphOptions := roadgraph.GraphOptions{
		Avoid:        datastructure.ParseRoutingOptions(cfg.Router.Avoid),
		LengthFactor: cfg.Router.LengthFactor,
	}

	snapper := snap.NewRoadSnapper(cfg.Router.SnapRadiusM, cfg.Router.MaxProjections, lg)
	snapper.BuildRoadSnapper(index)

	rt := router.NewIndexRouter(index, estimator, graphOptions, snapper, router.OptionsFromConfig(cfg.Router), lg)

	store, err := crossmwm.OpenStore(cfg.Data.CrossMwmDB, false)
	if err != nil {
		return err
	}
	defer store.Close()
	cross := crossmwm.NewGraph(store, roadgraph.NewGraph(index, estimator, graphOptions), lg)
	rt.SetCrossMwm(cross, leaps.NewMwmHierarchyHandler(index.GetRegistry(), cfg.Router.CrossCountryPenaltyS,
		cfg.Router.MwmCrossingPenaltyS))

	if cfg.Data.RegionsDB != "" {
		kv, err := regions.OpenKVDB(cfg.Data.RegionsDB, false, cfg.Tiles.RegionsResolution, lg)
		if err != nil {
			return err
		}
		defer kv.Close()
		sparse, err := regions.NewSparseGraph(kv, 0, lg)
		if err != nil {
			return err
		}
		rt.SetRegions(kv, sparse)
	}

	if cfg.Data.Guides != "" {
		g, err := loadGuides(cfg.Data.Guides)
		if err != nil {
			return err
		}
		lg.Info("guides loaded", zap.Int("tracks", g.TracksCount()))
		rt.SetGuides(g)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := rest.NewMetrics(reg)
	rt.SetMetrics(router.NewMetrics(reg))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	rest.NavigatorRouter(r, service.NewNavigationService(rt, snapper, lg), lg)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}
	errCh := make(chan error, 1)
	go func() {
		lg.Info("server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// loadGuides reads one encoded polyline per line.
func loadGuides(path string) (*guides.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open guides %s: %w", path, err)
	}
	defer f.Close()

	g := guides.NewGraph(guides.DefaultSpeedKmH)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		encoded := strings.TrimSpace(scanner.Text())
		if encoded == "" || strings.HasPrefix(encoded, "#") {
			continue
		}
		if _, err := g.AddEncodedTrack(encoded); err != nil {
			return nil, fmt.Errorf("guides %s line %d: %w", path, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read guides %s: %w", path, err)
	}
	return g, nil
}
