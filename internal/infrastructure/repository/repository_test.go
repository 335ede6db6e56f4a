package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/garagehq/shopapi/internal/domain/inventory"
	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/domain/ticket"
	"github.com/garagehq/shopapi/internal/domain/user"
	vo "github.com/garagehq/shopapi/internal/domain/user/valueobjects"
	"github.com/garagehq/shopapi/internal/infrastructure/persistence/models"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
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

type fixture struct {
	db        *gorm.DB
	users     *UserRepository
	mechanics *MechanicRepository
	parts     *InventoryRepository
	tickets   *TicketRepository
}

func newFixture(t *testing.T) *fixture {
	gdb := setupTestDB(t)
	log := logger.NewNopLogger()
	return &fixture{
		db:        gdb,
		users:     NewUserRepository(gdb, log),
		mechanics: NewMechanicRepository(gdb, log),
		parts:     NewInventoryRepository(gdb, log),
		tickets:   NewTicketRepository(gdb, log),
	}
}

func (f *fixture) createUser(t *testing.T, email string) *user.User {
	t.Helper()
	addr, err := vo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.NewUser("", addr, "hash")
	require.NoError(t, err)
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) createMechanic(t *testing.T, name string) *mechanic.Mechanic {
	t.Helper()
	m, err := mechanic.NewMechanic(name, "engines")
	require.NoError(t, err)
	require.NoError(t, f.mechanics.Create(context.Background(), m))
	return m
}

func (f *fixture) createPart(t *testing.T, name string, price float64) *inventory.Part {
	t.Helper()
	p, err := inventory.NewPart(name, price)
	require.NoError(t, err)
	require.NoError(t, f.parts.Create(context.Background(), p))
	return p
}

func (f *fixture) createTicket(t *testing.T, owner *user.User, desc string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(desc, owner.ID())
	require.NoError(t, err)
	require.NoError(t, f.tickets.Create(context.Background(), tk))
	return tk
}
