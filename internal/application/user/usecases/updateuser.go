package usecases

import (
	"context"
	"fmt"

	"github.com/garagehq/shopapi/internal/application/common"
	"github.com/garagehq/shopapi/internal/application/user/dto"
	"github.com/garagehq/shopapi/internal/domain/user"
	vo "github.com/garagehq/shopapi/internal/domain/user/valueobjects"
	"github.com/garagehq/shopapi/internal/shared/authorization"
	"github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

// UpdateUserCommand carries the allow-listed fields; nil leaves a field
// unchanged.
type UpdateUserCommand struct {
	Actor    authorization.Identity
	UserID   uint
	Name     *string
	Email    *string
	Password *string
}

type UpdateUserUseCase struct {
	userRepo  user.Repository
	hasher    PasswordHasher
	policy    common.PolicyEnforcer
	sanitizer common.TextSanitizer
	logger    logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	policy common.PolicyEnforcer,
	sanitizer common.TextSanitizer,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		policy:    policy,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	if err := common.AuthorizeOwnerOrManager(uc.policy, cmd.Actor, cmd.UserID, authorization.ResourceUsers); err != nil {
		uc.logger.Warnw("user update denied", "actor_id", cmd.Actor.UserID, "user_id", cmd.UserID)
		return nil, err
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if cmd.Name != nil {
		if err := u.UpdateName(uc.sanitizer.StripTags(*cmd.Name)); err != nil {
			return nil, err
		}
	}

	if cmd.Email != nil {
		email, err := vo.NewEmail(*cmd.Email)
		if err != nil {
			return nil, err
		}
		if !u.Email().Equals(email) {
			other, err := uc.userRepo.GetByEmail(ctx, email.String())
			if err != nil {
				return nil, fmt.Errorf("failed to check email existence: %w", err)
			}
			if other != nil {
				return nil, errors.NewConflictError("email already registered")
			}
		}
		if err := u.UpdateEmail(email); err != nil {
			return nil, err
		}
	}

	if cmd.Password != nil {
		if *cmd.Password == "" {
			return nil, errors.NewValidationError("password cannot be empty")
		}
		if err := checkPasswordLength(*cmd.Password); err != nil {
			return nil, err
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := u.UpdatePasswordHash(hash); err != nil {
			return nil, err
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.logger.Infow("user updated successfully", "user_id", u.ID(), "actor_id", cmd.Actor.UserID)

	return dto.ToUserDTO(u), nil
}
