package usecases

import (
	"context"
	"fmt"

	"github.com/garagehq/shopapi/internal/application/common"
	"github.com/garagehq/shopapi/internal/application/ticket/dto"
	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/domain/ticket"
	vo "github.com/garagehq/shopapi/internal/domain/ticket/valueobjects"
	"github.com/garagehq/shopapi/internal/domain/user"
	"github.com/garagehq/shopapi/internal/shared/authorization"
	"github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

// CreateTicketCommand creates a ticket owned by Actor.
type CreateTicketCommand struct {
	Actor             authorization.Identity
	Description       string
	Status            *string
	PrimaryMechanicID *uint
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.Repository
	userRepo     user.Repository
	mechanicRepo mechanic.Repository
	sanitizer    common.TextSanitizer
	loader       *detailsLoader
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	mechanicRepo mechanic.Repository,
	sanitizer common.TextSanitizer,
	renderer DescriptionRenderer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		userRepo:     userRepo,
		mechanicRepo: mechanicRepo,
		sanitizer:    sanitizer,
		loader:       newDetailsLoader(ticketRepo, renderer, logger),
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	owner, err := uc.userRepo.GetByID(ctx, cmd.Actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket owner: %w", err)
	}
	if owner == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	t, err := ticket.NewTicket(uc.sanitizer.StripTags(cmd.Description), owner.ID())
	if err != nil {
		return nil, err
	}

	if cmd.Status != nil {
		if _, err := t.ChangeStatus(vo.TicketStatus(*cmd.Status)); err != nil {
			return nil, err
		}
	}

	if cmd.PrimaryMechanicID != nil {
		if err := ensureMechanicExists(ctx, uc.mechanicRepo, *cmd.PrimaryMechanicID); err != nil {
			return nil, err
		}
		t.AssignPrimaryMechanic(cmd.PrimaryMechanicID)
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", t.ID(), "user_id", owner.ID())

	return uc.loader.loadOne(ctx, t.ID())
}

func ensureMechanicExists(ctx context.Context, repo mechanic.Repository, id uint) error {
	m, err := repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get mechanic: %w", err)
	}
	if m == nil {
		return errors.NewNotFoundError("mechanic not found", fmt.Sprintf("unknown mechanic id: %d", id))
	}
	return nil
}
