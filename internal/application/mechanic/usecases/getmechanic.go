package usecases

import (
	"context"
	"fmt"

	"github.com/garagehq/shopapi/internal/application/mechanic/dto"
	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

type GetMechanicUseCase struct {
	repo   mechanic.Repository
	logger logger.Interface
}

func NewGetMechanicUseCase(repo mechanic.Repository, logger logger.Interface) *GetMechanicUseCase {
	return &GetMechanicUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetMechanicUseCase) Execute(ctx context.Context, id uint) (*dto.MechanicDTO, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get mechanic", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get mechanic: %w", err)
	}
	if m == nil {
		return nil, errors.NewNotFoundError("mechanic not found")
	}

	return dto.ToMechanicDTO(m), nil
}
