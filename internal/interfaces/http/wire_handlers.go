package http

import (
	"github.com/garagehq/shopapi/internal/interfaces/http/handlers"
	inventoryHandlers "github.com/garagehq/shopapi/internal/interfaces/http/handlers/inventory"
	mechanicHandlers "github.com/garagehq/shopapi/internal/interfaces/http/handlers/mechanic"
	ticketHandlers "github.com/garagehq/shopapi/internal/interfaces/http/handlers/ticket"
	userHandlers "github.com/garagehq/shopapi/internal/interfaces/http/handlers/user"
)

// allHandlers holds all HTTP handler instances.
type allHandlers struct {
	healthHandler    *handlers.HealthHandler
	userHandler      *userHandlers.Handler
	mechanicHandler  *mechanicHandlers.Handler
	inventoryHandler *inventoryHandlers.Handler
	ticketHandler    *ticketHandlers.Handler
}

func (c *Container) initHandlers() error {
	u := c.ucs
	log := c.log

	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	c.hdlrs = &allHandlers{
		healthHandler: handlers.NewHealthHandler(sqlDB, log),
		userHandler: userHandlers.NewHandler(
			u.signupUC, u.loginUC, u.getUserUC, u.listUsersUC, u.updateUserUC, u.deleteUserUC,
			u.listTicketsUC, log,
		),
		mechanicHandler: mechanicHandlers.NewHandler(
			u.createMechanicUC, u.getMechanicUC, u.listMechanicsUC, u.updateMechanicUC,
			u.deleteMechanicUC, u.leaderboardUC, log,
		),
		inventoryHandler: inventoryHandlers.NewHandler(
			u.createPartUC, u.getPartUC, u.listPartsUC, u.updatePartUC, u.deletePartUC, log,
		),
		ticketHandler: ticketHandlers.NewHandler(
			u.createTicketUC, u.getTicketUC, u.listTicketsUC, u.updateTicketUC, u.deleteTicketUC,
			u.editMechanicsUC, u.addPartUC, u.removePartUC, log,
		),
	}
	return nil
}
