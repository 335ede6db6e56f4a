package usecases

import (
	"context"
	"fmt"

	"github.com/garagehq/shopapi/internal/application/mechanic/dto"
	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

type ListMechanicsQuery struct {
	Page     int
	PageSize int
}

type ListMechanicsResult struct {
	Mechanics []*dto.MechanicDTO
	Total     int64
}

type ListMechanicsUseCase struct {
	repo   mechanic.Repository
	logger logger.Interface
}

func NewListMechanicsUseCase(repo mechanic.Repository, logger logger.Interface) *ListMechanicsUseCase {
	return &ListMechanicsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListMechanicsUseCase) Execute(ctx context.Context, query ListMechanicsQuery) (*ListMechanicsResult, error) {
	list, total, err := uc.repo.List(ctx, mechanic.ListFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list mechanics", "error", err)
		return nil, fmt.Errorf("failed to list mechanics: %w", err)
	}

	return &ListMechanicsResult{
		Mechanics: dto.ToMechanicDTOList(list),
		Total:     total,
	}, nil
}
