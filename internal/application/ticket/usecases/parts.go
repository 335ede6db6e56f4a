package usecases

import (
	"context"
	"fmt"

	"github.com/garagehq/shopapi/internal/application/common"
	"github.com/garagehq/shopapi/internal/application/ticket/dto"
	"github.com/garagehq/shopapi/internal/domain/inventory"
	"github.com/garagehq/shopapi/internal/domain/ticket"
	"github.com/garagehq/shopapi/internal/shared/authorization"
	"github.com/garagehq/shopapi/internal/shared/db"
	"github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

type PartCommand struct {
	Actor    authorization.Identity
	TicketID uint
	PartID   uint
}

// AddPartUseCase attaches a part to a ticket. Attaching it twice is a no-op.
type AddPartUseCase struct {
	ticketRepo ticket.Repository
	partRepo   inventory.Repository
	policy     common.PolicyEnforcer
	txMgr      db.Transactor
	loader     *detailsLoader
	logger     logger.Interface
}

func NewAddPartUseCase(
	ticketRepo ticket.Repository,
	partRepo inventory.Repository,
	policy common.PolicyEnforcer,
	renderer DescriptionRenderer,
	txMgr db.Transactor,
	logger logger.Interface,
) *AddPartUseCase {
	return &AddPartUseCase{
		ticketRepo: ticketRepo,
		partRepo:   partRepo,
		policy:     policy,
		txMgr:      txMgr,
		loader:     newDetailsLoader(ticketRepo, renderer, logger),
		logger:     logger,
	}
}

func (uc *AddPartUseCase) Execute(ctx context.Context, cmd PartCommand) (*dto.TicketDTO, error) {
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		t, err := getTicket(ctx, uc.ticketRepo, cmd.TicketID)
		if err != nil {
			return err
		}
		if err := common.AuthorizeOwnerOrManager(uc.policy, cmd.Actor, t.UserID(), authorization.ResourceTickets); err != nil {
			return err
		}

		p, err := uc.partRepo.GetByID(ctx, cmd.PartID)
		if err != nil {
			return fmt.Errorf("failed to get part: %w", err)
		}
		if p == nil {
			return errors.NewNotFoundError("part not found")
		}

		return uc.ticketRepo.AddPart(ctx, t.ID(), p.ID())
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("part added to ticket", "ticket_id", cmd.TicketID, "part_id", cmd.PartID)

	return uc.loader.loadOne(ctx, cmd.TicketID)
}

// RemovePartUseCase detaches a part; detaching a part that is not attached
// succeeds without change.
type RemovePartUseCase struct {
	ticketRepo ticket.Repository
	policy     common.PolicyEnforcer
	txMgr      db.Transactor
	loader     *detailsLoader
	logger     logger.Interface
}

func NewRemovePartUseCase(
	ticketRepo ticket.Repository,
	policy common.PolicyEnforcer,
	renderer DescriptionRenderer,
	txMgr db.Transactor,
	logger logger.Interface,
) *RemovePartUseCase {
	return &RemovePartUseCase{
		ticketRepo: ticketRepo,
		policy:     policy,
		txMgr:      txMgr,
		loader:     newDetailsLoader(ticketRepo, renderer, logger),
		logger:     logger,
	}
}

func (uc *RemovePartUseCase) Execute(ctx context.Context, cmd PartCommand) (*dto.TicketDTO, error) {
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		t, err := getTicket(ctx, uc.ticketRepo, cmd.TicketID)
		if err != nil {
			return err
		}
		if err := common.AuthorizeOwnerOrManager(uc.policy, cmd.Actor, t.UserID(), authorization.ResourceTickets); err != nil {
			return err
		}
		return uc.ticketRepo.RemovePart(ctx, t.ID(), cmd.PartID)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("part removed from ticket", "ticket_id", cmd.TicketID, "part_id", cmd.PartID)

	return uc.loader.loadOne(ctx, cmd.TicketID)
}
