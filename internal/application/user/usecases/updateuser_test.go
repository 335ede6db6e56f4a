package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagehq/shopapi/internal/domain/user"
	"github.com/garagehq/shopapi/internal/shared/authorization"
	apperrors "github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
	"github.com/garagehq/shopapi/internal/shared/services/markdown"
)

func strPtr(s string) *string {
	return &s
}

func newUpdateUseCase(repo *mockUserRepository) *UpdateUserUseCase {
	policy := &mockPolicy{allowed: map[authorization.UserRole]bool{authorization.RoleAdmin: true}}
	return NewUpdateUserUseCase(repo, &plainHasher{}, policy, markdown.NewMarkdownService(), logger.NewNopLogger())
}

func TestUpdateUserUseCase_SelfUpdatesAllowListedFields(t *testing.T) {
	var saved *user.User
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return existingUser(id, "alice@example.com", authorization.RoleUser), nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			saved = u
			return nil
		},
	}

	result, err := newUpdateUseCase(repo).Execute(context.Background(), UpdateUserCommand{
		Actor:    authorization.Identity{UserID: 4, Role: authorization.RoleUser},
		UserID:   4,
		Name:     strPtr("Alice A."),
		Password: strPtr("newpassword"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice A.", result.Name)
	assert.Equal(t, "alice@example.com", result.Email)
	assert.Equal(t, "hashed:newpassword", saved.PasswordHash())
	assert.Equal(t, authorization.RoleUser, saved.Role())
}

func TestUpdateUserUseCase_OtherUserForbidden(t *testing.T) {
	_, err := newUpdateUseCase(&mockUserRepository{}).Execute(context.Background(), UpdateUserCommand{
		Actor:  authorization.Identity{UserID: 4, Role: authorization.RoleMechanic},
		UserID: 9,
		Name:   strPtr("x"),
	})

	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestUpdateUserUseCase_AdminMayUpdateOthers(t *testing.T) {
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return existingUser(id, "bob@example.com", authorization.RoleUser), nil
		},
	}

	result, err := newUpdateUseCase(repo).Execute(context.Background(), UpdateUserCommand{
		Actor:  authorization.Identity{UserID: 1, Role: authorization.RoleAdmin},
		UserID: 9,
		Email:  strPtr("robert@example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "robert@example.com", result.Email)
}

func TestUpdateUserUseCase_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return existingUser(id, "bob@example.com", authorization.RoleUser), nil
		},
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return existingUser(2, email, authorization.RoleUser), nil
		},
	}

	_, err := newUpdateUseCase(repo).Execute(context.Background(), UpdateUserCommand{
		Actor:  authorization.Identity{UserID: 9, Role: authorization.RoleUser},
		UserID: 9,
		Email:  strPtr("alice@example.com"),
	})

	assert.True(t, apperrors.IsConflictError(err))
}

func TestUpdateUserUseCase_NotFound(t *testing.T) {
	_, err := newUpdateUseCase(&mockUserRepository{}).Execute(context.Background(), UpdateUserCommand{
		Actor:  authorization.Identity{UserID: 9, Role: authorization.RoleUser},
		UserID: 9,
	})

	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateUserUseCase_PasswordOverBcryptByteLimit(t *testing.T) {
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return existingUser(id, "alice@example.com", authorization.RoleUser), nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			t.Fatal("user must not be saved")
			return nil
		},
	}

	_, err := newUpdateUseCase(repo).Execute(context.Background(), UpdateUserCommand{
		Actor:    authorization.Identity{UserID: 4, Role: authorization.RoleUser},
		UserID:   4,
		Password: strPtr(strings.Repeat("é", 40)),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
