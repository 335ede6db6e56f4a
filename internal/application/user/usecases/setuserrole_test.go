package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagehq/shopapi/internal/domain/user"
	"github.com/garagehq/shopapi/internal/shared/authorization"
	apperrors "github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

func TestSetUserRoleUseCase(t *testing.T) {
	var saved *user.User
	repo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return existingUser(2, email, authorization.RoleUser), nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			saved = u
			return nil
		},
	}
	uc := NewSetUserRoleUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), SetUserRoleCommand{Email: "casey@example.com", Role: "mechanic"})
	require.NoError(t, err)
	assert.Equal(t, "mechanic", result.Role)
	assert.Equal(t, authorization.RoleMechanic, saved.Role())

	_, err = uc.Execute(context.Background(), SetUserRoleCommand{Email: "casey@example.com", Role: "root"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestSetUserRoleUseCase_UnknownEmail(t *testing.T) {
	uc := NewSetUserRoleUseCase(&mockUserRepository{}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), SetUserRoleCommand{Email: "ghost@example.com", Role: "admin"})

	assert.True(t, apperrors.IsNotFoundError(err))
}
