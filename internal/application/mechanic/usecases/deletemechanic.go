package usecases

import (
	"context"
	"fmt"

	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/shared/db"
	"github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

// DeleteMechanicUseCase removes the mechanic from every ticket and then
// deletes it, in one transaction.
type DeleteMechanicUseCase struct {
	repo     mechanic.Repository
	detacher TicketDetacher
	txMgr    db.Transactor
	logger   logger.Interface
}

func NewDeleteMechanicUseCase(
	repo mechanic.Repository,
	detacher TicketDetacher,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteMechanicUseCase {
	return &DeleteMechanicUseCase{
		repo:     repo,
		detacher: detacher,
		txMgr:    txMgr,
		logger:   logger,
	}
}

func (uc *DeleteMechanicUseCase) Execute(ctx context.Context, id uint) error {
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		m, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get mechanic: %w", err)
		}
		if m == nil {
			return errors.NewNotFoundError("mechanic not found")
		}

		if err := uc.detacher.DetachMechanic(ctx, id); err != nil {
			return err
		}
		return uc.repo.Delete(ctx, id)
	})
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete mechanic", "mechanic_id", id, "error", err)
		}
		return err
	}

	uc.logger.Infow("mechanic deleted successfully", "mechanic_id", id)
	return nil
}
