package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagehq/shopapi/internal/domain/mechanic"
	apperrors "github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
	"github.com/garagehq/shopapi/internal/shared/services/markdown"
)

func TestCreateMechanicUseCase(t *testing.T) {
	uc := NewCreateMechanicUseCase(&mockMechanicRepository{}, markdown.NewMarkdownService(), logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), CreateMechanicCommand{Name: "Casey"})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.ID)
	assert.Equal(t, "Casey", result.Name)
	assert.Empty(t, result.Specialty)
}

func TestCreateMechanicUseCase_NameRequired(t *testing.T) {
	uc := NewCreateMechanicUseCase(&mockMechanicRepository{}, markdown.NewMarkdownService(), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateMechanicCommand{Name: "<script>x</script>"})

	assert.True(t, apperrors.IsValidationError(err))
}

func TestUpdateMechanicUseCase_PartialUpdate(t *testing.T) {
	repo := &mockMechanicRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*mechanic.Mechanic, error) {
			return mustMechanic(id, "Casey", "brakes"), nil
		},
	}
	uc := NewUpdateMechanicUseCase(repo, markdown.NewMarkdownService(), logger.NewNopLogger())
	specialty := "transmissions"

	result, err := uc.Execute(context.Background(), UpdateMechanicCommand{ID: 3, Specialty: &specialty})

	require.NoError(t, err)
	assert.Equal(t, "Casey", result.Name)
	assert.Equal(t, "transmissions", result.Specialty)
}

func TestUpdateMechanicUseCase_NotFound(t *testing.T) {
	uc := NewUpdateMechanicUseCase(&mockMechanicRepository{}, markdown.NewMarkdownService(), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), UpdateMechanicCommand{ID: 3})

	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeleteMechanicUseCase_DetachesFirst(t *testing.T) {
	var deleted uint
	repo := &mockMechanicRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*mechanic.Mechanic, error) {
			return mustMechanic(id, "Casey", ""), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	detacher := &mockDetacher{}
	uc := NewDeleteMechanicUseCase(repo, detacher, passthroughTx{}, logger.NewNopLogger())

	require.NoError(t, uc.Execute(context.Background(), 8))
	assert.Equal(t, []uint{8}, detacher.detached)
	assert.Equal(t, uint(8), deleted)
}

func TestDeleteMechanicUseCase_NotFound(t *testing.T) {
	detacher := &mockDetacher{}
	uc := NewDeleteMechanicUseCase(&mockMechanicRepository{}, detacher, passthroughTx{}, logger.NewNopLogger())

	err := uc.Execute(context.Background(), 8)

	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Empty(t, detacher.detached)
}

func TestLeaderboardUseCase_ClampsLimit(t *testing.T) {
	var gotLimit int
	repo := &mockMechanicRepository{
		LeaderboardFunc: func(ctx context.Context, limit int) ([]*mechanic.LeaderboardEntry, error) {
			gotLimit = limit
			return []*mechanic.LeaderboardEntry{
				{Mechanic: mustMechanic(2, "Casey", ""), TicketsCount: 4},
			}, nil
		},
	}
	uc := NewLeaderboardUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 10, gotLimit)
	require.Len(t, result, 1)
	assert.Equal(t, int64(4), result[0].TicketsCount)

	_, err = uc.Execute(context.Background(), 5000)
	require.NoError(t, err)
	assert.Equal(t, 100, gotLimit)
}
