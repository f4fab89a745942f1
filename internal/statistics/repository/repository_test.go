package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.Exec(`
		CREATE TABLE teams (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			invite_code CHAR(8) NOT NULL UNIQUE,
			created_by VARCHAR(255) NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`).Error
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE team_members (
			team_id VARCHAR(36) NOT NULL,
			user_id VARCHAR(255) NOT NULL,
			role VARCHAR(16) NOT NULL,
			joined_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (team_id, user_id)
		)
	`).Error
	require.NoError(t, err)

	return db
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()

	teams := [][]string{
		{"t1", "Bravo", "AAAAAAA1", "u1"},
		{"t2", "Alpha", "AAAAAAA2", "u2"},
		{"t3", "Charlie", "AAAAAAA3", "u3"},
	}
	for _, tm := range teams {
		require.NoError(t, db.Exec(
			"INSERT INTO teams (id, name, invite_code, created_by) VALUES (?, ?, ?, ?)",
			tm[0], tm[1], tm[2], tm[3]).Error)
	}

	members := [][]string{
		{"t1", "u1", "admin"},
		{"t1", "u2", "member"},
		{"t1", "u3", "member"},
		{"t2", "u2", "admin"},
		{"t2", "u1", "member"},
		{"t3", "u3", "admin"},
	}
	for _, m := range members {
		require.NoError(t, db.Exec(
			"INSERT INTO team_members (team_id, user_id, role) VALUES (?, ?, ?)",
			m[0], m[1], m[2]).Error)
	}
}

func TestGetTeamStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("empty database", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		stats, err := repo.GetTeamStatistics(ctx, "u1")

		require.NoError(t, err)
		assert.NotNil(t, stats)
		assert.Empty(t, stats)
	})

	t.Run("counts per team", func(t *testing.T) {
		db := setupTestDB(t)
		seed(t, db)
		repo := New(db, zap.NewNop().Sugar())

		stats, err := repo.GetTeamStatistics(ctx, "u1")

		require.NoError(t, err)
		require.Len(t, stats, 2)

		assert.Equal(t, "t2", stats[0].TeamID)
		assert.Equal(t, "Alpha", stats[0].Name)
		assert.False(t, stats[0].IsAdmin)
		assert.Equal(t, 2, stats[0].MemberCount)
		assert.Equal(t, 1, stats[0].AdminCount)

		assert.Equal(t, "t1", stats[1].TeamID)
		assert.True(t, stats[1].IsAdmin)
		assert.Equal(t, 3, stats[1].MemberCount)
		assert.Equal(t, 1, stats[1].AdminCount)
	})

	t.Run("user without teams", func(t *testing.T) {
		db := setupTestDB(t)
		seed(t, db)
		repo := New(db, zap.NewNop().Sugar())

		stats, err := repo.GetTeamStatistics(ctx, "nobody")

		require.NoError(t, err)
		assert.Empty(t, stats)
	})

	t.Run("missing tables", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)
		repo := New(db, zap.NewNop().Sugar())

		_, err = repo.GetTeamStatistics(ctx, "u1")

		assert.Error(t, err)
	})
}
