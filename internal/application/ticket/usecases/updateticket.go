package usecases

import (
	"context"

	"github.com/garagehq/shopapi/internal/application/common"
	"github.com/garagehq/shopapi/internal/application/ticket/dto"
	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/domain/ticket"
	vo "github.com/garagehq/shopapi/internal/domain/ticket/valueobjects"
	"github.com/garagehq/shopapi/internal/shared/authorization"
	"github.com/garagehq/shopapi/internal/shared/db"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

// UpdateTicketCommand carries the allow-listed fields. PrimaryMechanicSet
// distinguishes an explicit null (clear) from an absent field.
type UpdateTicketCommand struct {
	Actor              authorization.Identity
	TicketID           uint
	Description        *string
	Status             *string
	PrimaryMechanicID  *uint
	PrimaryMechanicSet bool
}

type UpdateTicketUseCase struct {
	ticketRepo   ticket.Repository
	mechanicRepo mechanic.Repository
	policy       common.PolicyEnforcer
	sanitizer    common.TextSanitizer
	mailer       StatusMailer
	txMgr        db.Transactor
	loader       *detailsLoader
	logger       logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	mechanicRepo mechanic.Repository,
	policy common.PolicyEnforcer,
	sanitizer common.TextSanitizer,
	renderer DescriptionRenderer,
	mailer StatusMailer,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:   ticketRepo,
		mechanicRepo: mechanicRepo,
		policy:       policy,
		sanitizer:    sanitizer,
		mailer:       mailer,
		txMgr:        txMgr,
		loader:       newDetailsLoader(ticketRepo, renderer, logger),
		logger:       logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	statusChanged := false

	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		t, err := getTicket(ctx, uc.ticketRepo, cmd.TicketID)
		if err != nil {
			return err
		}
		if err := common.AuthorizeOwnerOrManager(uc.policy, cmd.Actor, t.UserID(), authorization.ResourceTickets); err != nil {
			return err
		}

		if cmd.Description != nil {
			if err := t.UpdateDescription(uc.sanitizer.StripTags(*cmd.Description)); err != nil {
				return err
			}
		}
		if cmd.Status != nil {
			changed, err := t.ChangeStatus(vo.TicketStatus(*cmd.Status))
			if err != nil {
				return err
			}
			statusChanged = changed
		}
		if cmd.PrimaryMechanicSet {
			if cmd.PrimaryMechanicID != nil {
				if err := ensureMechanicExists(ctx, uc.mechanicRepo, *cmd.PrimaryMechanicID); err != nil {
					return err
				}
			}
			t.AssignPrimaryMechanic(cmd.PrimaryMechanicID)
		}

		return uc.ticketRepo.Update(ctx, t)
	})
	if err != nil {
		return nil, err
	}

	result, err := uc.loader.loadOne(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully",
		"ticket_id", cmd.TicketID,
		"actor_id", cmd.Actor.UserID,
		"status_changed", statusChanged)

	if statusChanged && result.User != nil {
		if err := uc.mailer.SendTicketStatusEmail(result.User.Email, result.User.Name, result.ID, result.Status); err != nil {
			uc.logger.Warnw("failed to send ticket status email", "ticket_id", result.ID, "error", err)
		}
	}

	return result, nil
}
