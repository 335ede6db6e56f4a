package usecases

import (
	"context"
	"errors"
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

func TestSignupUseCase_Success(t *testing.T) {
	var created *user.User
	repo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			created = u
			return u.SetID(5)
		},
	}
	mailer := &mockMailer{}
	uc := NewSignupUseCase(repo, &plainHasher{}, mailer, markdown.NewMarkdownService(), logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), SignupCommand{
		Email:    "Alice@Example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), result.ID)
	assert.Equal(t, "alice@example.com", result.Email)
	assert.Equal(t, "alice", result.Name)
	assert.Equal(t, "user", result.Role)
	assert.Equal(t, "hashed:password123", created.PasswordHash())
	assert.Equal(t, []string{"alice@example.com"}, mailer.sent)
}

func TestSignupUseCase_StripsMarkupFromName(t *testing.T) {
	uc := NewSignupUseCase(&mockUserRepository{}, &plainHasher{}, &mockMailer{}, markdown.NewMarkdownService(), logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), SignupCommand{
		Name:     "<b>Alice</b> Smith",
		Email:    "alice@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", result.Name)
}

func TestSignupUseCase_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return existingUser(1, email, authorization.RoleUser), nil
		},
	}
	uc := NewSignupUseCase(repo, &plainHasher{}, &mockMailer{}, markdown.NewMarkdownService(), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), SignupCommand{Email: "alice@example.com", Password: "password123"})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestSignupUseCase_InvalidEmail(t *testing.T) {
	uc := NewSignupUseCase(&mockUserRepository{}, &plainHasher{}, &mockMailer{}, markdown.NewMarkdownService(), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), SignupCommand{Email: "not-an-email", Password: "password123"})

	assert.True(t, apperrors.IsValidationError(err))
}

func TestSignupUseCase_PasswordOverBcryptByteLimit(t *testing.T) {
	repo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			t.Fatal("user must not be created")
			return nil
		},
	}
	uc := NewSignupUseCase(repo, &plainHasher{}, &mockMailer{}, markdown.NewMarkdownService(), logger.NewNopLogger())

	// 40 runes, 80 bytes
	_, err := uc.Execute(context.Background(), SignupCommand{
		Email:    "mb@example.com",
		Password: strings.Repeat("é", 40),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestSignupUseCase_MailFailureDoesNotFail(t *testing.T) {
	mailer := &mockMailer{err: errors.New("smtp down")}
	uc := NewSignupUseCase(&mockUserRepository{}, &plainHasher{}, mailer, markdown.NewMarkdownService(), logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), SignupCommand{Email: "bob@example.com", Password: "password123"})

	require.NoError(t, err)
	assert.NotNil(t, result)
}
