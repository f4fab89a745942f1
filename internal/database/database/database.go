// Package database manages the PostgreSQL connection.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/teamtracker/teamtracker/internal/database/config"
	"github.com/teamtracker/teamtracker/internal/database/pool"
	"github.com/teamtracker/teamtracker/pkg/retry"
)

// New connects using DB_* environment variables.
func New(ctx context.Context, logger *zap.SugaredLogger) (*gorm.DB, error) {
	return NewWithConfig(ctx, config.LoadConfigFromEnv(), logger)
}

// NewWithConfig connects to PostgreSQL, retrying transient failures, and
// configures the connection pool.
func NewWithConfig(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger) (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, config.ConnectTimeout)
	defer cancel()

	retryCfg := cfg.Retry
	if retryCfg.MaxAttempts == 0 {
		retryCfg = retry.PostgresConfig()
	}
	retryCfg.OnRetry = func(attempt int, err error) {
		logger.Warnw("database connection attempt failed",
			"attempt", attempt,
			"host", cfg.Host,
			"error", config.SanitizeError(err, cfg))
	}

	dsn := config.BuildDSN(cfg)
	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
	})
	if err != nil {
		return nil, config.SanitizeError(err, cfg)
	}

	poolCfg := cfg.Pool
	if poolCfg.MaxOpenConns == 0 {
		poolCfg = pool.DefaultPoolConfig()
	}
	if err := pool.SetupConnectionPool(db, poolCfg); err != nil {
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}

	logger.Infow("database connected", "host", cfg.Host, "db", cfg.DBName)
	return db, nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// GetStats returns connection pool statistics.
func GetStats(db *gorm.DB) (*sql.DBStats, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	stats := sqlDB.Stats()
	return &stats, nil
}
