package usecases

import (
	"context"

	"github.com/garagehq/shopapi/internal/application/common"
	"github.com/garagehq/shopapi/internal/application/mechanic/dto"
	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

type CreateMechanicCommand struct {
	Name      string
	Specialty string
}

type CreateMechanicUseCase struct {
	repo      mechanic.Repository
	sanitizer common.TextSanitizer
	logger    logger.Interface
}

func NewCreateMechanicUseCase(repo mechanic.Repository, sanitizer common.TextSanitizer, logger logger.Interface) *CreateMechanicUseCase {
	return &CreateMechanicUseCase{
		repo:      repo,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *CreateMechanicUseCase) Execute(ctx context.Context, cmd CreateMechanicCommand) (*dto.MechanicDTO, error) {
	m, err := mechanic.NewMechanic(uc.sanitizer.StripTags(cmd.Name), uc.sanitizer.StripTags(cmd.Specialty))
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	uc.logger.Infow("mechanic created successfully", "mechanic_id", m.ID())

	return dto.ToMechanicDTO(m), nil
}
