package http

import (
	"github.com/garagehq/shopapi/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// The concrete types are kept so cross-aggregate helpers such as
// DetachMechanic stay reachable without extra adapters.
type repositories struct {
	userRepo      *repository.UserRepository
	mechanicRepo  *repository.MechanicRepository
	inventoryRepo *repository.InventoryRepository
	ticketRepo    *repository.TicketRepository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:      repository.NewUserRepository(c.db, c.log),
		mechanicRepo:  repository.NewMechanicRepository(c.db, c.log),
		inventoryRepo: repository.NewInventoryRepository(c.db, c.log),
		ticketRepo:    repository.NewTicketRepository(c.db, c.log),
	}
}
