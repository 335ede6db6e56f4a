package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/garagehq/shopapi/internal/application/user/dto"
	"github.com/garagehq/shopapi/internal/domain/user"
	vo "github.com/garagehq/shopapi/internal/domain/user/valueobjects"
	"github.com/garagehq/shopapi/internal/shared/authorization"
	"github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

// SetUserRoleCommand is issued by operators from the command line; there is
// no HTTP route for it.
type SetUserRoleCommand struct {
	Email string
	Role  string
}

type SetUserRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSetUserRoleUseCase(userRepo user.Repository, logger logger.Interface) *SetUserRoleUseCase {
	return &SetUserRoleUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *SetUserRoleUseCase) Execute(ctx context.Context, cmd SetUserRoleCommand) (*dto.UserDTO, error) {
	role := authorization.UserRole(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid role %q", cmd.Role), roleNames())
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}

	u, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := u.SetRole(role); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.logger.Infow("user role changed", "user_id", u.ID(), "role", role)

	return dto.ToUserDTO(u), nil
}

func roleNames() string {
	names := make([]string, 0, len(authorization.Roles()))
	for _, r := range authorization.Roles() {
		names = append(names, r.String())
	}
	return "valid roles: " + strings.Join(names, ", ")
}
