// Package main is the entry point for the back-office server.
// The server is a thin backend-for-frontend over the remote inventory API:
// it validates callers, serves reads through the query cache and forwards
// mutations upstream.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"backoffice/internal/core/cache"
	"backoffice/internal/domain"
	"backoffice/internal/domain/access"
	"backoffice/internal/domain/auth"
	"backoffice/internal/domain/catalogs"
	"backoffice/internal/domain/documents/movement"
	"backoffice/internal/domain/documents/sale"
	"backoffice/internal/domain/documents/salesreturn"
	"backoffice/internal/domain/documents/transfer"
	"backoffice/internal/domain/selection"
	"backoffice/internal/domain/stock"
	"backoffice/internal/infrastructure/api"
	v1 "backoffice/internal/infrastructure/http/v1"
	"backoffice/pkg/config"
	"backoffice/pkg/logger"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to a config file (optional)")
	flag.Parse()

	// Load .env if present; real environment variables take precedence
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.App.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Infow("starting backoffice server", "version", version, "env", cfg.App.Env)

	if !cfg.App.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.JWT.Secret == "" {
		log.Fatalw("jwt.secret is required")
	}

	// --- Inventory API client ---
	client, err := api.NewClient(api.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	})
	if err != nil {
		log.Fatalw("failed to create inventory api client", "error", err)
	}
	log.Infow("inventory api configured", "base_url", cfg.API.BaseURL, "timeout", cfg.API.Timeout)

	// --- Metrics ---
	var registry *prometheus.Registry
	cacheOpts := []cache.Option{
		cache.WithPolicy(cache.Policy{FastTTL: cfg.Cache.FastTTL, SlowTTL: cfg.Cache.SlowTTL}),
	}
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		cacheOpts = append(cacheOpts, cache.WithMetrics(cache.NewMetrics(registry)))
	}

	// --- Query cache ---
	queries := cache.New(cacheOpts...)
	queryCache := domain.NewCache(queries)
	queryCache.Dispatcher.OnInvalidate(func(ev cache.Event) {
		if ev.Touches(cache.KindStock) {
			log.Infow("stock views invalidated",
				"mutation", ev.Mutation,
				"stock_refs", len(ev.Target.Stock),
				"entries", ev.Invalidated,
			)
		}
	})
	log.Infow("query cache initialized", "fast_ttl", cfg.Cache.FastTTL, "slow_ttl", cfg.Cache.SlowTTL)

	// --- Services ---
	movements := movement.NewService(api.NewMovementRepository(client), queryCache)
	transfers := transfer.NewService(api.NewTransferRepository(client), queryCache)
	sales := sale.NewService(api.NewSaleRepository(client), queryCache)
	returns := salesreturn.NewService(api.NewReturnRepository(client), queryCache)

	transfers.Hooks().On(domain.AfterTransition, func(ctx context.Context, doc *transfer.Transfer) error {
		if doc.Status.IsTerminal() {
			logger.Info(ctx, "transfer closed", "id", doc.ID, "status", doc.Status)
		}
		return nil
	})

	// --- JWT ---
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(cfg.JWT.Secret, cfg.JWT.Issuer))

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:       log,
		JWTValidator: jwtService,
		Cache:        queries,
		Movements:    movements,
		Transfers:    transfers,
		Sales:        sales,
		Returns:      returns,
		Stock:        stock.NewService(api.NewStockRepository(client), queryCache),
		Catalogs:     catalogs.NewService(api.NewCatalogRepository(client), queryCache),
		Access:       access.NewService(api.NewAccessRepository(client), queryCache),
		Selection:    selection.NewStore(),
		Metrics:      registry,
		AdminRole:    "admin",
		Version:      version,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.App.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
