package handlers

import (
	"context"

	"tally/internal/application/user/usecases"
	"tally/internal/domain/user"
)

// Use case interfaces consumed by MemberHandler.

type ChangePasswordUseCase interface {
	Execute(ctx context.Context, userID string, cmd usecases.ChangePasswordCommand) error
}

type UpdateCounterUseCase interface {
	Execute(ctx context.Context, userID string, cmd usecases.UpdateCounterCommand) (*user.User, error)
}
