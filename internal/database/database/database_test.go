package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/teamtracker/teamtracker/internal/database/config"
	"github.com/teamtracker/teamtracker/pkg/retry"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestNewWithConfig_Unreachable(t *testing.T) {
	cfg := config.Config{
		Host:     "127.0.0.1",
		User:     "tt",
		Password: "secret-pw",
		DBName:   "teamtracker",
		Port:     "1",
		SSLMode:  "disable",
		TimeZone: "UTC",
		Retry: retry.Config{
			MaxAttempts:     2,
			InitialDelay:    time.Millisecond,
			MaxDelay:        time.Millisecond,
			Multiplier:      1,
			RetryableErrors: retry.DefaultPostgresRetryableErrors(),
		},
	}

	db, err := NewWithConfig(context.Background(), cfg, zap.NewNop().Sugar())

	require.Error(t, err)
	assert.Nil(t, db)
	assert.NotContains(t, err.Error(), "secret-pw")
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("nil database", func(t *testing.T) {
		assert.ErrorContains(t, HealthCheck(ctx, nil), "nil")
	})

	t.Run("healthy", func(t *testing.T) {
		db := openSQLite(t)
		defer Close(db)

		assert.NoError(t, HealthCheck(ctx, db))
	})

	t.Run("closed connection", func(t *testing.T) {
		db := openSQLite(t)
		require.NoError(t, Close(db))

		assert.ErrorContains(t, HealthCheck(ctx, db), "ping failed")
	})
}

func TestClose(t *testing.T) {
	assert.NoError(t, Close(nil))
	assert.NoError(t, Close(openSQLite(t)))
}

func TestGetStats(t *testing.T) {
	t.Run("nil database", func(t *testing.T) {
		stats, err := GetStats(nil)
		assert.Error(t, err)
		assert.Nil(t, stats)
	})

	t.Run("returns stats", func(t *testing.T) {
		db := openSQLite(t)
		defer Close(db)

		stats, err := GetStats(db)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, stats.OpenConnections, 0)
	})
}
