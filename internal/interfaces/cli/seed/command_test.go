package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/garagehq/shopapi/internal/infrastructure/persistence/models"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

const sample = `
mechanics:
  - name: Casey
    specialty: brakes
  - name: "<b>Alex</b>"
parts:
  - name: Brake pad
    price: 19.5
`

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func TestParse(t *testing.T) {
	fixture, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, fixture.Mechanics, 2)
	assert.Equal(t, "brakes", fixture.Mechanics[0].Specialty)
	require.Len(t, fixture.Parts, 1)
	assert.InDelta(t, 19.5, fixture.Parts[0].Price, 0.0001)

	empty, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Mechanics)

	_, err = Parse(strings.NewReader("vehicles:\n  - name: van\n"))
	assert.Error(t, err)
}

func TestSeeder_Apply(t *testing.T) {
	gdb := openDB(t)
	fixture, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	res, err := NewSeeder(gdb, logger.NewNopLogger()).Apply(context.Background(), fixture)
	require.NoError(t, err)
	assert.Equal(t, Result{Mechanics: 2, Parts: 1}, res)

	var names []string
	require.NoError(t, gdb.Model(&models.MechanicModel{}).Order("name").Pluck("name", &names).Error)
	assert.Equal(t, []string{"Alex", "Casey"}, names)
}

func TestSeeder_ApplyIsAllOrNothing(t *testing.T) {
	gdb := openDB(t)
	fixture := &Fixture{
		Mechanics: []MechanicSeed{{Name: "Casey"}},
		Parts:     []PartSeed{{Name: "Rotor", Price: -1}},
	}

	_, err := NewSeeder(gdb, logger.NewNopLogger()).Apply(context.Background(), fixture)
	require.Error(t, err)

	var count int64
	require.NoError(t, gdb.Model(&models.MechanicModel{}).Count(&count).Error)
	assert.Zero(t, count)
}
