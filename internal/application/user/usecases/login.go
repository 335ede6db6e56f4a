package usecases

import (
	"context"
	"fmt"

	"github.com/garagehq/shopapi/internal/application/user/dto"
	"github.com/garagehq/shopapi/internal/domain/user"
	vo "github.com/garagehq/shopapi/internal/domain/user/valueobjects"
	"github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
	"github.com/garagehq/shopapi/internal/shared/utils"
)

const (
	tokenTypeBearer       = "Bearer"
	errInvalidCredentials = "invalid email or password"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.TokenDTO, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		uc.hasher.VerifyDummy(cmd.Password)
		return nil, errors.NewUnauthorizedError(errInvalidCredentials)
	}

	u, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to load user for login", "error", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		uc.hasher.VerifyDummy(cmd.Password)
		uc.logger.Warnw("login failed: unknown email", "email", utils.MaskEmail(email.String()))
		return nil, errors.NewUnauthorizedError(errInvalidCredentials)
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("login failed: wrong password", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError(errInvalidCredentials)
	}

	ttl := uc.tokens.DefaultTTL()
	token, err := uc.tokens.Issue(u.ID(), u.Role(), ttl)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", u.ID())
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &dto.TokenDTO{
		Token:     token,
		TokenType: tokenTypeBearer,
		ExpiresIn: int64(ttl.Seconds()),
	}, nil
}
