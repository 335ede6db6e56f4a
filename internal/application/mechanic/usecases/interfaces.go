package usecases

import (
	"context"

	"github.com/garagehq/shopapi/internal/application/mechanic/dto"
)

// TicketDetacher drops a mechanic from every ticket before it is deleted.
type TicketDetacher interface {
	DetachMechanic(ctx context.Context, mechanicID uint) error
}

type CreateMechanicExecutor interface {
	Execute(ctx context.Context, cmd CreateMechanicCommand) (*dto.MechanicDTO, error)
}

type GetMechanicExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.MechanicDTO, error)
}

type ListMechanicsExecutor interface {
	Execute(ctx context.Context, query ListMechanicsQuery) (*ListMechanicsResult, error)
}

type UpdateMechanicExecutor interface {
	Execute(ctx context.Context, cmd UpdateMechanicCommand) (*dto.MechanicDTO, error)
}

type DeleteMechanicExecutor interface {
	Execute(ctx context.Context, id uint) error
}

type LeaderboardExecutor interface {
	Execute(ctx context.Context, limit int) ([]*dto.LeaderboardEntryDTO, error)
}
