package usecases

import (
	"context"
	"fmt"

	"github.com/garagehq/shopapi/internal/application/common"
	"github.com/garagehq/shopapi/internal/application/mechanic/dto"
	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

type UpdateMechanicCommand struct {
	ID        uint
	Name      *string
	Specialty *string
}

type UpdateMechanicUseCase struct {
	repo      mechanic.Repository
	sanitizer common.TextSanitizer
	logger    logger.Interface
}

func NewUpdateMechanicUseCase(repo mechanic.Repository, sanitizer common.TextSanitizer, logger logger.Interface) *UpdateMechanicUseCase {
	return &UpdateMechanicUseCase{
		repo:      repo,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *UpdateMechanicUseCase) Execute(ctx context.Context, cmd UpdateMechanicCommand) (*dto.MechanicDTO, error) {
	m, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mechanic: %w", err)
	}
	if m == nil {
		return nil, errors.NewNotFoundError("mechanic not found")
	}

	if cmd.Name != nil {
		if err := m.UpdateName(uc.sanitizer.StripTags(*cmd.Name)); err != nil {
			return nil, err
		}
	}
	if cmd.Specialty != nil {
		if err := m.UpdateSpecialty(uc.sanitizer.StripTags(*cmd.Specialty)); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	uc.logger.Infow("mechanic updated successfully", "mechanic_id", m.ID())

	return dto.ToMechanicDTO(m), nil
}
