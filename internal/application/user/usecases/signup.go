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

type SignupCommand struct {
	Name     string
	Email    string
	Password string
	TTL      time.Duration
}

type SignupResult struct {
	User  *user.User
	Token string
}

// SignupUseCase registers a new account and immediately issues a
// session for it, so a fresh signup lands logged in.
type SignupUseCase struct {
	userRepo user.Repository
	sessions *sessions.Manager
	logger   logger.Interface
}

func NewSignupUseCase(userRepo user.Repository, sessions *sessions.Manager, logger logger.Interface) *SignupUseCase {
	return &SignupUseCase{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*SignupResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email availability", "error", err)
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("this email address is already registered")
	}

	newUser, err := user.NewUser(cmd.Name, cmd.Email, cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err, "email", cmd.Email)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.sessions.Create(ctx, newUser.ID, cmd.TTL)
	if err != nil {
		uc.logger.Errorw("failed to create session after signup", "error", err, "user_id", newUser.ID)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	uc.logger.Infow("user signed up", "user_id", newUser.ID)

	return &SignupResult{User: newUser, Token: token}, nil
}
