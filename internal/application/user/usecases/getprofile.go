package usecases

import (
	"context"
	"fmt"

	domainUser "tally/internal/domain/user"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// GetProfileUseCase fetches the profile of an authenticated user.
type GetProfileUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo domainUser.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID string) (*domainUser.User, error) {
	userEntity, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if userEntity == nil {
		return nil, errors.NewNotFoundError("user account not found")
	}

	return userEntity, nil
}
