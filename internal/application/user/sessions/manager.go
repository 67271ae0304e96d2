package sessions

import (
	"context"
	"fmt"
	"time"

	domainUser "tally/internal/domain/user"
	"tally/internal/shared/biztime"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// Manager orchestrates the session store. It enforces the
// single-active-session policy on create and treats missing or expired
// tokens as a normal negative on resolve, never as an error.
type Manager struct {
	sessionRepo domainUser.SessionRepository
	logger      logger.Interface
}

func NewManager(sessionRepo domainUser.SessionRepository, logger logger.Interface) *Manager {
	return &Manager{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Create invalidates any prior session for the user, persists a fresh
// one expiring after ttl, and returns its token. Two concurrent creates
// for the same user race at the store; last writer wins, which the
// store's unique user index keeps safe.
func (m *Manager) Create(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	if err := m.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
		return "", fmt.Errorf("failed to invalidate prior sessions: %w", err)
	}

	session, err := domainUser.NewSession(userID, biztime.NowUTC().Add(ttl))
	if err != nil {
		return "", err
	}

	if err := m.sessionRepo.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	m.logger.Debugw("session created", "user_id", userID, "expires_at", session.ExpiresAt)

	return session.ID, nil
}

// Resolve maps a session token to its user ID. ok is false for a
// missing or expired token; a non-nil error only signals a store fault.
func (m *Manager) Resolve(ctx context.Context, token string) (userID string, ok bool, err error) {
	if token == "" {
		return "", false, nil
	}

	session, err := m.sessionRepo.GetByID(ctx, token)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to look up session: %w", err)
	}

	if session.IsExpired() {
		// Opportunistic hygiene; correctness does not depend on it.
		if err := m.sessionRepo.Delete(ctx, session.ID); err != nil && !errors.IsNotFound(err) {
			m.logger.Warnw("failed to delete expired session", "error", err)
		}
		return "", false, nil
	}

	return session.UserID, true, nil
}

// Destroy deletes the session identified by token. Destroying an
// absent session is a no-op, so the operation is idempotent.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := m.sessionRepo.Delete(ctx, token); err != nil {
		if errors.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	m.logger.Debugw("session destroyed", "session_id", token)

	return nil
}
