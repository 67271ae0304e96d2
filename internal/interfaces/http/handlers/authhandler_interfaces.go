package handlers

import (
	"context"

	"tally/internal/application/user/usecases"
	"tally/internal/domain/user"
)

// Use case interfaces consumed by AuthHandler. Defined here so tests
// can substitute lightweight mocks.

type SignupUseCase interface {
	Execute(ctx context.Context, cmd usecases.SignupCommand) (*usecases.SignupResult, error)
}

type LoginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type LogoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.LogoutCommand) error
}

type GetProfileUseCase interface {
	Execute(ctx context.Context, userID string) (*user.User, error)
}
