package usecases

import (
	"context"
	"fmt"
	"time"

	"tally/internal/application/user/sessions"
	"tally/internal/domain/user"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
	TTL      time.Duration
}

type LoginResult struct {
	User  *user.User
	Token string
}

type LoginUseCase struct {
	userRepo user.Repository
	sessions *sessions.Manager
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, sessions *sessions.Manager, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Same message for unknown email and wrong password so the
	// response does not reveal whether the email exists.
	if existingUser == nil || !existingUser.VerifyPassword(cmd.Password) {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, err := uc.sessions.Create(ctx, existingUser.ID, cmd.TTL)
	if err != nil {
		uc.logger.Errorw("failed to create session", "error", err, "user_id", existingUser.ID)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID)

	return &LoginResult{User: existingUser, Token: token}, nil
}
