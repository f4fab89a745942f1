// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/teamtracker/teamtracker/internal/config"
	"github.com/teamtracker/teamtracker/internal/database/database"
	"github.com/teamtracker/teamtracker/internal/database/migrate"
	"github.com/teamtracker/teamtracker/internal/health"
	"github.com/teamtracker/teamtracker/internal/metrics"
	"github.com/teamtracker/teamtracker/internal/middleware"
	profileRouter "github.com/teamtracker/teamtracker/internal/profile/router"
	statisticsRouter "github.com/teamtracker/teamtracker/internal/statistics/router"
	teamRouter "github.com/teamtracker/teamtracker/internal/team/router"
	"github.com/teamtracker/teamtracker/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func run() error {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	sugar, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = sugar.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, sugar)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			sugar.Errorw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db, sugar); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics.RegisterMetrics(registry)

	gin.SetMode(cfg.GinMode)
	router := newRouter(cfg, db, registry, sugar)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		sugar.Infow("starting http server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	case <-ctx.Done():
		sugar.Infow("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	sugar.Infow("server stopped")
	return nil
}

// newRouter builds the gin engine. Everything except /health and /metrics
// requires a bearer token.
func newRouter(cfg appConfig.Config, db *gorm.DB, registry *prometheus.Registry, sugar *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(sugar),
		middleware.Logger(sugar),
		middleware.Metrics(),
	)

	health.RegisterRoutes(r, db, sugar)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := r.Group("/", middleware.Auth(cfg.Auth, sugar))
	teamRouter.RegisterRoutes(api, db, cfg.Team, sugar)
	profileRouter.RegisterRoutes(api, db, sugar)
	statisticsRouter.RegisterRoutes(api, db, sugar)

	return r
}
