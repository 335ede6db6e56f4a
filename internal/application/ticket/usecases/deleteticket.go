package usecases

import (
	"context"

	"github.com/garagehq/shopapi/internal/application/common"
	"github.com/garagehq/shopapi/internal/domain/ticket"
	"github.com/garagehq/shopapi/internal/shared/authorization"
	"github.com/garagehq/shopapi/internal/shared/db"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Actor    authorization.Identity
	TicketID uint
}

type DeleteTicketUseCase struct {
	repo   ticket.Repository
	policy common.PolicyEnforcer
	txMgr  db.Transactor
	logger logger.Interface
}

func NewDeleteTicketUseCase(
	repo ticket.Repository,
	policy common.PolicyEnforcer,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		repo:   repo,
		policy: policy,
		txMgr:  txMgr,
		logger: logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		t, err := getTicket(ctx, uc.repo, cmd.TicketID)
		if err != nil {
			return err
		}
		if err := common.AuthorizeOwnerOrManager(uc.policy, cmd.Actor, t.UserID(), authorization.ResourceTickets); err != nil {
			return err
		}
		return uc.repo.Delete(ctx, t.ID())
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)
	return nil
}
