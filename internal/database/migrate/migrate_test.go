package migrate

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/teamtracker/teamtracker/migrations"
)

func createTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestMigrate_NilDatabase(t *testing.T) {
	err := Migrate(nil, zap.NewNop().Sugar())
	assert.ErrorContains(t, err, "database connection is nil")
}

func TestMigrate_NonPostgresDatabase(t *testing.T) {
	db := createTestDB(t)

	err := Migrate(db, zap.NewNop().Sugar())

	assert.ErrorContains(t, err, "failed to create postgres driver")
}

func TestMigrateFS_InvalidSource(t *testing.T) {
	db := createTestDB(t)
	broken := fstest.MapFS{"not-a-migration.txt": &fstest.MapFile{Data: []byte("x")}}

	err := MigrateFS(db, broken, zap.NewNop().Sugar())

	assert.Error(t, err)
}

func TestEmbeddedMigrations(t *testing.T) {
	t.Run("every up has a down", func(t *testing.T) {
		entries, err := fs.ReadDir(migrations.FS, ".")
		require.NoError(t, err)

		ups := map[string]bool{}
		downs := map[string]bool{}
		for _, entry := range entries {
			name := entry.Name()
			switch {
			case strings.HasSuffix(name, ".up.sql"):
				ups[strings.TrimSuffix(name, ".up.sql")] = true
			case strings.HasSuffix(name, ".down.sql"):
				downs[strings.TrimSuffix(name, ".down.sql")] = true
			}
		}

		require.NotEmpty(t, ups)
		assert.Equal(t, ups, downs)
	})

	t.Run("source parses and starts at version 1", func(t *testing.T) {
		source, err := iofs.New(migrations.FS, ".")
		require.NoError(t, err)
		defer source.Close()

		first, err := source.First()
		require.NoError(t, err)
		assert.Equal(t, uint(1), first)
	})

	t.Run("schema carries the uniqueness constraints", func(t *testing.T) {
		teams, err := fs.ReadFile(migrations.FS, "000002_create_teams.up.sql")
		require.NoError(t, err)
		assert.Contains(t, string(teams), "CONSTRAINT uq_teams_invite_code UNIQUE (invite_code)")

		members, err := fs.ReadFile(migrations.FS, "000003_create_team_members.up.sql")
		require.NoError(t, err)
		assert.Contains(t, string(members), "PRIMARY KEY (team_id, user_id)")
		assert.Contains(t, string(members), "ON DELETE CASCADE")
	})
}
