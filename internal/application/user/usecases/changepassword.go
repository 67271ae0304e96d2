package usecases

import (
	"context"
	"fmt"

	domainUser "tally/internal/domain/user"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

type ChangePasswordCommand struct {
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordUseCase handles changing a user's password.
type ChangePasswordUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewChangePasswordUseCase(userRepo domainUser.Repository, logger logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, userID string, cmd ChangePasswordCommand) error {
	userEntity, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if userEntity == nil {
		// The account may have been deleted after the session was issued.
		uc.logger.Warnw("user not found for password change", "user_id", userID)
		return errors.NewNotFoundError("user account not found")
	}

	if err := userEntity.ChangePassword(cmd.CurrentPassword, cmd.NewPassword); err != nil {
		uc.logger.Warnw("password change rejected", "user_id", userID, "error", err)
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, userEntity); err != nil {
		uc.logger.Errorw("failed to persist password change", "user_id", userID, "error", err)
		return fmt.Errorf("failed to save user updates: %w", err)
	}

	uc.logger.Infow("password changed", "user_id", userID)

	return nil
}
