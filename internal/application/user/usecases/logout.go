package usecases

import (
	"context"
	"fmt"

	"tally/internal/application/user/sessions"
	"tally/internal/shared/logger"
)

type LogoutCommand struct {
	Token string
}

type LogoutUseCase struct {
	sessions *sessions.Manager
	logger   logger.Interface
}

func NewLogoutUseCase(sessions *sessions.Manager, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessions: sessions,
		logger:   logger,
	}
}

// Execute destroys the session behind the token. A missing or already
// destroyed session is not an error; logout is idempotent.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if err := uc.sessions.Destroy(ctx, cmd.Token); err != nil {
		uc.logger.Errorw("failed to destroy session", "error", err)
		return fmt.Errorf("failed to logout: %w", err)
	}

	return nil
}
