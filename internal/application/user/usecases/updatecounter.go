package usecases

import (
	"context"
	"fmt"

	domainUser "tally/internal/domain/user"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

type UpdateCounterCommand struct {
	CounterValue int
}

// UpdateCounterUseCase stores a new counter value for the user and
// returns the updated record.
type UpdateCounterUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewUpdateCounterUseCase(userRepo domainUser.Repository, logger logger.Interface) *UpdateCounterUseCase {
	return &UpdateCounterUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateCounterUseCase) Execute(ctx context.Context, userID string, cmd UpdateCounterCommand) (*domainUser.User, error) {
	userEntity, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if userEntity == nil {
		return nil, errors.NewNotFoundError("user account not found")
	}

	userEntity.SetCounter(cmd.CounterValue)

	if err := uc.userRepo.Update(ctx, userEntity); err != nil {
		uc.logger.Errorw("failed to persist counter update", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to save user updates: %w", err)
	}

	return userEntity, nil
}
