package usecases

import (
	"context"
	"fmt"

	"github.com/garagehq/shopapi/internal/application/common"
	"github.com/garagehq/shopapi/internal/application/user/dto"
	"github.com/garagehq/shopapi/internal/domain/user"
	vo "github.com/garagehq/shopapi/internal/domain/user/valueobjects"
	"github.com/garagehq/shopapi/internal/shared/constants"
	"github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

type SignupCommand struct {
	Name     string
	Email    string
	Password string
}

type SignupUseCase struct {
	userRepo  user.Repository
	hasher    PasswordHasher
	mailer    WelcomeMailer
	sanitizer common.TextSanitizer
	logger    logger.Interface
}

func NewSignupUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	mailer WelcomeMailer,
	sanitizer common.TextSanitizer,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		mailer:    mailer,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*dto.UserDTO, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	if cmd.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}
	if err := checkPasswordLength(cmd.Password); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(uc.sanitizer.StripTags(cmd.Name), email, hash)
	if err != nil {
		return nil, err
	}

	// the unique index still catches a concurrent signup with the same email
	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	if err := uc.mailer.SendWelcomeEmail(email.String(), newUser.Name()); err != nil {
		uc.logger.Warnw("failed to send welcome email", "error", err, "user_id", newUser.ID())
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID())

	return dto.ToUserDTO(newUser), nil
}

func checkPasswordLength(password string) error {
	if len(password) > constants.MaxPasswordBytes {
		return errors.NewValidationError("invalid password",
			fmt.Sprintf("password must be at most %d bytes", constants.MaxPasswordBytes))
	}
	return nil
}
