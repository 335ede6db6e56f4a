package usecases

import (
	"context"
	"fmt"

	"github.com/garagehq/shopapi/internal/application/mechanic/dto"
	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/shared/constants"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

const maxLeaderboardSize = 100

// LeaderboardUseCase ranks mechanics by the number of distinct tickets they
// are primary on or work on.
type LeaderboardUseCase struct {
	repo   mechanic.Repository
	logger logger.Interface
}

func NewLeaderboardUseCase(repo mechanic.Repository, logger logger.Interface) *LeaderboardUseCase {
	return &LeaderboardUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *LeaderboardUseCase) Execute(ctx context.Context, limit int) ([]*dto.LeaderboardEntryDTO, error) {
	if limit <= 0 {
		limit = constants.DefaultLeaderboardSize
	}
	if limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}

	entries, err := uc.repo.Leaderboard(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to build leaderboard", "error", err)
		return nil, fmt.Errorf("failed to build leaderboard: %w", err)
	}

	return dto.ToLeaderboardDTOList(entries), nil
}
