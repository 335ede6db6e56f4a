package usecases

import (
	"context"
	"fmt"

	"github.com/garagehq/shopapi/internal/application/common"
	"github.com/garagehq/shopapi/internal/domain/user"
	"github.com/garagehq/shopapi/internal/shared/authorization"
	"github.com/garagehq/shopapi/internal/shared/db"
	"github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

type DeleteUserCommand struct {
	Actor  authorization.Identity
	UserID uint
}

// DeleteUserUseCase removes a user together with the tickets it owns.
type DeleteUserUseCase struct {
	userRepo user.Repository
	tickets  TicketCleaner
	policy   common.PolicyEnforcer
	txMgr    db.Transactor
	logger   logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	tickets TicketCleaner,
	policy common.PolicyEnforcer,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		tickets:  tickets,
		policy:   policy,
		txMgr:    txMgr,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if err := common.AuthorizeOwnerOrManager(uc.policy, cmd.Actor, cmd.UserID, authorization.ResourceUsers); err != nil {
		uc.logger.Warnw("user delete denied", "actor_id", cmd.Actor.UserID, "user_id", cmd.UserID)
		return err
	}

	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		if u == nil {
			return errors.NewNotFoundError("user not found")
		}

		if err := uc.tickets.DeleteByOwner(ctx, u.ID()); err != nil {
			return err
		}
		return uc.userRepo.Delete(ctx, u.ID())
	})
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		}
		return err
	}

	uc.logger.Infow("user deleted successfully", "user_id", cmd.UserID, "actor_id", cmd.Actor.UserID)
	return nil
}
