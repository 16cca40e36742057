package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jotomicron/mossy/internal/config"
	dbRedis "github.com/jotomicron/mossy/internal/db/redis"
	dbSqlite "github.com/jotomicron/mossy/internal/db/sqlite"
	"github.com/jotomicron/mossy/internal/domain"
	logpkg "github.com/jotomicron/mossy/internal/logger"
	"github.com/jotomicron/mossy/internal/metrics"
	entityrepo "github.com/jotomicron/mossy/internal/repository/entity"
	hierarchyrepo "github.com/jotomicron/mossy/internal/repository/hierarchy"
	relationrepo "github.com/jotomicron/mossy/internal/repository/relation"
	chiTransport "github.com/jotomicron/mossy/internal/transport/chi"
	compareuc "github.com/jotomicron/mossy/internal/usecase/compare"
	healthuc "github.com/jotomicron/mossy/internal/usecase/health"
	icuc "github.com/jotomicron/mossy/internal/usecase/ic"
	weightsuc "github.com/jotomicron/mossy/internal/usecase/weights"
	"github.com/jotomicron/mossy/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting mossy API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_path", cfg.Database.Path),
		zap.String("ic_source", cfg.IC.Source),
	)

	// Open the closure store
	store, err := dbSqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to open closure store", zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	if err := store.Ping(ctx); err != nil {
		logger.Fatal("Closure store not ready", zap.Error(err))
	}
	logger.Info("Connected to closure store")

	// Register comparison metrics explicitly (no init())
	metrics.RegisterCompareMetrics()

	// Repositories
	relations := relationrepo.New(store)
	relatives := hierarchyrepo.New(store)
	entities := entityrepo.New(store)

	// Property weight table: derived frequencies first, explicit
	// overrides second, hierarchy weight last.
	table, err := buildWeightTable(ctx, cfg.Comparer, relations, entities)
	if err != nil {
		logger.Fatal("Failed to build weight table", zap.Error(err))
	}

	// Information-content source
	icSource, icStore, err := buildICSource(ctx, cfg.IC, logger)
	if err != nil {
		logger.Fatal("Failed to create IC source", zap.Error(err))
	}
	if icStore != nil {
		defer icStore.Close()
	}

	comparer := compareuc.New(relations, relatives, entities, icSource, table, compareuc.Config{
		DistanceThreshold:  *cfg.Comparer.DistanceThreshold,
		WeightThreshold:    *cfg.Comparer.WeightThreshold,
		DiscoverSubclasses: cfg.Comparer.DiscoverSubclasses,
	}, logger)

	var icPinger healthuc.ICPinger
	if icStore != nil {
		icPinger = icStore
	}
	health := healthuc.New(store, icPinger)

	server := chiTransport.NewServer(comparer, entities, table, health, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(metrics.Middleware())
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))

	r.Get("/healthz", server.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/v1", func(r chi.Router) {
		r.Post("/compare", server.HandleCompare)
		r.Get("/resolve", server.HandleResolve)
		r.Get("/weights", server.HandleWeights)
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}

// buildWeightTable applies the configured weighting scheme in the
// required precedence order.
func buildWeightTable(
	ctx context.Context,
	cfg config.ComparerConfig,
	usage weightsuc.UsageReader,
	resolver compareuc.Resolver,
) (*weightsuc.Table, error) {
	var derived map[domain.PropertyID]float64
	if cfg.LogScale.Enabled {
		var err error
		derived, err = weightsuc.DeriveLogScale(ctx, usage, cfg.LogScale.ScaleMin, cfg.LogScale.ScaleMax)
		if err != nil {
			return nil, err
		}
	}

	overrides := make(map[domain.PropertyID]float64, len(cfg.PropertyWeights))
	for iri, weight := range cfg.PropertyWeights {
		id, err := resolver.Resolve(ctx, iri, domain.KindObjectProperty)
		if err != nil {
			return nil, fmt.Errorf("property weight for %q: %w", iri, err)
		}
		overrides[domain.PropertyID(id)] = weight
	}

	return weightsuc.NewTable(derived, overrides, *cfg.DefaultWeight, *cfg.HierarchyWeight), nil
}

// buildICSource creates the configured information-content source.
// The returned store is non-nil only for external sources and must be
// closed by the caller.
func buildICSource(
	ctx context.Context, cfg config.ICConfig, logger *zap.Logger,
) (icuc.Source, *dbRedis.Store, error) {
	if cfg.Source == "none" {
		return icuc.Neutral{}, nil, nil
	}

	icStore, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:     cfg.Addrs,
		Password:  cfg.Password,
		KeyPrefix: cfg.KeyPrefix,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := icStore.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		icStore.Close()
		return nil, nil, err
	}

	var source icuc.Source = icuc.NewStoreSource(icStore)
	if cfg.Cache {
		source = icuc.NewCachedSource(source, metrics.ICCacheTotal, logger)
	}
	return source, icStore, nil
}
