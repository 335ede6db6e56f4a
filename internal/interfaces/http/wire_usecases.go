package http

import (
	inventoryUsecases "github.com/garagehq/shopapi/internal/application/inventory/usecases"
	mechanicUsecases "github.com/garagehq/shopapi/internal/application/mechanic/usecases"
	ticketUsecases "github.com/garagehq/shopapi/internal/application/ticket/usecases"
	userUsecases "github.com/garagehq/shopapi/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the handlers.
type allUseCases struct {
	// User
	signupUC      *userUsecases.SignupUseCase
	loginUC       *userUsecases.LoginUseCase
	getUserUC     *userUsecases.GetUserUseCase
	listUsersUC   *userUsecases.ListUsersUseCase
	updateUserUC  *userUsecases.UpdateUserUseCase
	deleteUserUC  *userUsecases.DeleteUserUseCase
	setUserRoleUC *userUsecases.SetUserRoleUseCase

	// Mechanic
	createMechanicUC *mechanicUsecases.CreateMechanicUseCase
	getMechanicUC    *mechanicUsecases.GetMechanicUseCase
	listMechanicsUC  *mechanicUsecases.ListMechanicsUseCase
	updateMechanicUC *mechanicUsecases.UpdateMechanicUseCase
	deleteMechanicUC *mechanicUsecases.DeleteMechanicUseCase
	leaderboardUC    *mechanicUsecases.LeaderboardUseCase

	// Inventory
	createPartUC *inventoryUsecases.CreatePartUseCase
	getPartUC    *inventoryUsecases.GetPartUseCase
	listPartsUC  *inventoryUsecases.ListPartsUseCase
	updatePartUC *inventoryUsecases.UpdatePartUseCase
	deletePartUC *inventoryUsecases.DeletePartUseCase

	// Ticket
	createTicketUC  *ticketUsecases.CreateTicketUseCase
	getTicketUC     *ticketUsecases.GetTicketUseCase
	listTicketsUC   *ticketUsecases.ListTicketsUseCase
	updateTicketUC  *ticketUsecases.UpdateTicketUseCase
	deleteTicketUC  *ticketUsecases.DeleteTicketUseCase
	editMechanicsUC *ticketUsecases.EditMechanicsUseCase
	addPartUC       *ticketUsecases.AddPartUseCase
	removePartUC    *ticketUsecases.RemovePartUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log

	c.ucs = &allUseCases{
		signupUC:      userUsecases.NewSignupUseCase(r.userRepo, c.hasher, c.mailer, c.markdown, log),
		loginUC:       userUsecases.NewLoginUseCase(r.userRepo, c.hasher, c.jwtSvc, log),
		getUserUC:     userUsecases.NewGetUserUseCase(r.userRepo, log),
		listUsersUC:   userUsecases.NewListUsersUseCase(r.userRepo, log),
		updateUserUC:  userUsecases.NewUpdateUserUseCase(r.userRepo, c.hasher, c.enforcer, c.markdown, log),
		deleteUserUC:  userUsecases.NewDeleteUserUseCase(r.userRepo, r.ticketRepo, c.enforcer, c.txMgr, log),
		setUserRoleUC: userUsecases.NewSetUserRoleUseCase(r.userRepo, log),

		createMechanicUC: mechanicUsecases.NewCreateMechanicUseCase(r.mechanicRepo, c.markdown, log),
		getMechanicUC:    mechanicUsecases.NewGetMechanicUseCase(r.mechanicRepo, log),
		listMechanicsUC:  mechanicUsecases.NewListMechanicsUseCase(r.mechanicRepo, log),
		updateMechanicUC: mechanicUsecases.NewUpdateMechanicUseCase(r.mechanicRepo, c.markdown, log),
		deleteMechanicUC: mechanicUsecases.NewDeleteMechanicUseCase(r.mechanicRepo, r.ticketRepo, c.txMgr, log),
		leaderboardUC:    mechanicUsecases.NewLeaderboardUseCase(r.mechanicRepo, log),

		createPartUC: inventoryUsecases.NewCreatePartUseCase(r.inventoryRepo, c.markdown, log),
		getPartUC:    inventoryUsecases.NewGetPartUseCase(r.inventoryRepo, log),
		listPartsUC:  inventoryUsecases.NewListPartsUseCase(r.inventoryRepo, log),
		updatePartUC: inventoryUsecases.NewUpdatePartUseCase(r.inventoryRepo, c.markdown, log),
		deletePartUC: inventoryUsecases.NewDeletePartUseCase(r.inventoryRepo, r.ticketRepo, c.txMgr, log),

		createTicketUC: ticketUsecases.NewCreateTicketUseCase(
			r.ticketRepo, r.userRepo, r.mechanicRepo, c.markdown, c.markdown, log,
		),
		getTicketUC:   ticketUsecases.NewGetTicketUseCase(r.ticketRepo, c.markdown, log),
		listTicketsUC: ticketUsecases.NewListTicketsUseCase(r.ticketRepo, c.markdown, log),
		updateTicketUC: ticketUsecases.NewUpdateTicketUseCase(
			r.ticketRepo, r.mechanicRepo, c.enforcer, c.markdown, c.markdown, c.mailer, c.txMgr, log,
		),
		deleteTicketUC: ticketUsecases.NewDeleteTicketUseCase(r.ticketRepo, c.enforcer, c.txMgr, log),
		editMechanicsUC: ticketUsecases.NewEditMechanicsUseCase(
			r.ticketRepo, r.mechanicRepo, c.enforcer, c.markdown, c.txMgr, log,
		),
		addPartUC: ticketUsecases.NewAddPartUseCase(
			r.ticketRepo, r.inventoryRepo, c.enforcer, c.markdown, c.txMgr, log,
		),
		removePartUC: ticketUsecases.NewRemovePartUseCase(r.ticketRepo, c.enforcer, c.markdown, c.txMgr, log),
	}
}
