package usecases

import (
	"context"
	"time"

	"github.com/garagehq/shopapi/internal/application/user/dto"
	"github.com/garagehq/shopapi/internal/shared/authorization"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
	// VerifyDummy spends the same time as Verify so unknown emails cannot
	// be told apart by latency.
	VerifyDummy(password string)
}

type TokenIssuer interface {
	Issue(subjectID uint, role authorization.UserRole, ttl time.Duration) (string, error)
	DefaultTTL() time.Duration
}

type WelcomeMailer interface {
	SendWelcomeEmail(to, name string) error
}

// TicketCleaner removes the tickets owned by a user being deleted.
type TicketCleaner interface {
	DeleteByOwner(ctx context.Context, userID uint) error
}

type SignupExecutor interface {
	Execute(ctx context.Context, cmd SignupCommand) (*dto.UserDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.TokenDTO, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}

type SetUserRoleExecutor interface {
	Execute(ctx context.Context, cmd SetUserRoleCommand) (*dto.UserDTO, error)
}
