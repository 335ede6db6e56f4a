package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/garagehq/shopapi/internal/application/common"
	"github.com/garagehq/shopapi/internal/application/ticket/dto"
	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/domain/ticket"
	"github.com/garagehq/shopapi/internal/shared/authorization"
	"github.com/garagehq/shopapi/internal/shared/db"
	"github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
	"github.com/garagehq/shopapi/internal/shared/utils/setutil"
)

// EditMechanicsCommand adds and removes ticket members. Ids arrive as
// signed integers so that non-positive values can be rejected.
type EditMechanicsCommand struct {
	Actor     authorization.Identity
	TicketID  uint
	AddIDs    []int64
	RemoveIDs []int64
}

// EditMechanicsUseCase applies membership changes with set semantics:
// re-adding a member or removing a non-member is a no-op. Every add id must
// name an existing mechanic, otherwise nothing is applied.
type EditMechanicsUseCase struct {
	ticketRepo   ticket.Repository
	mechanicRepo mechanic.Repository
	policy       common.PolicyEnforcer
	txMgr        db.Transactor
	loader       *detailsLoader
	logger       logger.Interface
}

func NewEditMechanicsUseCase(
	ticketRepo ticket.Repository,
	mechanicRepo mechanic.Repository,
	policy common.PolicyEnforcer,
	renderer DescriptionRenderer,
	txMgr db.Transactor,
	logger logger.Interface,
) *EditMechanicsUseCase {
	return &EditMechanicsUseCase{
		ticketRepo:   ticketRepo,
		mechanicRepo: mechanicRepo,
		policy:       policy,
		txMgr:        txMgr,
		loader:       newDetailsLoader(ticketRepo, renderer, logger),
		logger:       logger,
	}
}

func (uc *EditMechanicsUseCase) Execute(ctx context.Context, cmd EditMechanicsCommand) (*dto.TicketDTO, error) {
	add, err := toIDSet("add_ids", cmd.AddIDs)
	if err != nil {
		return nil, err
	}
	remove, err := toIDSet("remove_ids", cmd.RemoveIDs)
	if err != nil {
		return nil, err
	}
	if both := add.Intersect(remove); len(both) > 0 {
		return nil, errors.NewValidationError(
			"mechanic ids cannot be both added and removed",
			"ids in both lists: "+joinIDs(both),
		)
	}

	err = uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		t, err := getTicket(ctx, uc.ticketRepo, cmd.TicketID)
		if err != nil {
			return err
		}
		if err := common.AuthorizeOwnerOrManager(uc.policy, cmd.Actor, t.UserID(), authorization.ResourceTickets); err != nil {
			return err
		}

		if add.Len() > 0 {
			found, err := uc.mechanicRepo.FindExistingIDs(ctx, add.ToSlice())
			if err != nil {
				return fmt.Errorf("failed to resolve mechanics: %w", err)
			}
			if missing := add.Missing(found); len(missing) > 0 {
				return errors.NewNotFoundError(
					"mechanics not found: "+joinIDs(missing),
					"unknown mechanic ids: "+joinIDs(missing),
				)
			}
			if err := uc.ticketRepo.AddMechanics(ctx, t.ID(), add.ToSlice()); err != nil {
				return err
			}
		}

		if remove.Len() > 0 {
			if err := uc.ticketRepo.RemoveMechanics(ctx, t.ID(), remove.ToSlice()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to edit ticket mechanics", "ticket_id", cmd.TicketID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("ticket mechanics edited",
		"ticket_id", cmd.TicketID,
		"added", add.Len(),
		"removed", remove.Len())

	return uc.loader.loadOne(ctx, cmd.TicketID)
}

func toIDSet(field string, ids []int64) (*setutil.UintSet, error) {
	set := setutil.NewUintSet()
	for _, id := range ids {
		if id <= 0 {
			return nil, errors.NewValidationError(field + " must contain positive integer ids")
		}
		set.Add(uint(id))
	}
	return set, nil
}

func joinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ", ")
}
