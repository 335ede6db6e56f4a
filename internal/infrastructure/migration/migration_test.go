package migration

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/garagehq/shopapi/internal/infrastructure/persistence/models"
	"github.com/garagehq/shopapi/internal/shared/config"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

func TestNewManager_PicksStrategyByDriver(t *testing.T) {
	log := logger.NewNopLogger()

	m, err := NewManager(config.DriverSQLite, log)
	require.NoError(t, err)
	assert.Equal(t, "gorm_auto_migrate", m.GetStrategy().GetName())

	m, err = NewManager(config.DriverMySQL, log)
	require.NoError(t, err)
	assert.Equal(t, "goose", m.GetStrategy().GetName())
}

func TestAutoMigrate_CreatesAllTables(t *testing.T) {
	gdb := openSQLite(t)
	m := NewManagerWithStrategy(NewGormAutoMigrateStrategy(logger.NewNopLogger()), logger.NewNopLogger())

	require.NoError(t, m.Migrate(context.Background(), gdb))
	for _, model := range models.All() {
		assert.True(t, gdb.Migrator().HasTable(model))
	}

	// running twice is a no-op
	require.NoError(t, m.Migrate(context.Background(), gdb))
}

func TestGooseStrategy_UpDownStatus(t *testing.T) {
	gdb := openSQLite(t)
	fsys := fstest.MapFS{
		"00001_widgets.sql": &fstest.MapFile{Data: []byte(
			"-- +goose Up\nCREATE TABLE widgets (id INTEGER PRIMARY KEY);\n-- +goose Down\nDROP TABLE widgets;\n")},
		"00002_gadgets.sql": &fstest.MapFile{Data: []byte(
			"-- +goose Up\nCREATE TABLE gadgets (id INTEGER PRIMARY KEY);\n-- +goose Down\nDROP TABLE gadgets;\n")},
	}
	s := NewGooseStrategyWithFS(fsys, logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, s.Migrate(ctx, gdb))
	version, err := s.GetVersion(ctx, gdb)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
	assert.True(t, gdb.Migrator().HasTable("gadgets"))

	require.NoError(t, s.MigrateDown(ctx, gdb, 1))
	assert.False(t, gdb.Migrator().HasTable("gadgets"))
	assert.True(t, gdb.Migrator().HasTable("widgets"))

	statuses, err := s.Status(ctx, gdb)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.True(t, statuses[0].Applied)
	assert.False(t, statuses[1].Applied)
}

func TestEmbeddedScriptsAreReadable(t *testing.T) {
	s, err := NewGooseStrategy(logger.NewNopLogger())
	require.NoError(t, err)
	require.NotNil(t, s.fsys)
}
