package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/domain/user"
	"tally/internal/shared/biztime"
	"tally/internal/shared/errors"
)

func createTestSession(t *testing.T, userID string, ttl time.Duration) *user.Session {
	s, err := user.NewSession(userID, biztime.NowUTC().Add(ttl))
	require.NoError(t, err)
	return s
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	s := createTestSession(t, "user-1", time.Hour)
	require.NoError(t, repo.Create(ctx, s))

	found, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, found.ID)
	assert.Equal(t, "user-1", found.UserID)
	assert.WithinDuration(t, s.ExpiresAt, found.ExpiresAt, time.Second)
}

func TestSessionRepository_GetByID_Absent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)

	_, err := repo.GetByID(context.Background(), "no-such-session")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSessionRepository_SingleSessionPerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	// The unique index on user_id rejects a second live session.
	first := createTestSession(t, "user-1", time.Hour)
	require.NoError(t, repo.Create(ctx, first))

	second := createTestSession(t, "user-1", time.Hour)
	err := repo.Create(ctx, second)
	assert.Error(t, err)

	// After clearing the user's sessions the insert succeeds.
	require.NoError(t, repo.DeleteByUserID(ctx, "user-1"))
	assert.NoError(t, repo.Create(ctx, second))
}

func TestSessionRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	s := createTestSession(t, "user-1", time.Hour)
	require.NoError(t, repo.Create(ctx, s))

	require.NoError(t, repo.Delete(ctx, s.ID))

	_, err := repo.GetByID(ctx, s.ID)
	assert.True(t, errors.IsNotFound(err))

	err = repo.Delete(ctx, s.ID)
	assert.True(t, errors.IsNotFound(err), "second delete reports not found")
}

func TestSessionRepository_DeleteByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	mine := createTestSession(t, "user-1", time.Hour)
	theirs := createTestSession(t, "user-2", time.Hour)
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, theirs))

	require.NoError(t, repo.DeleteByUserID(ctx, "user-1"))

	_, err := repo.GetByID(ctx, mine.ID)
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.GetByID(ctx, theirs.ID)
	assert.NoError(t, err, "other users keep their sessions")

	// Deleting for a user with no sessions is a no-op.
	assert.NoError(t, repo.DeleteByUserID(ctx, "user-3"))
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	expired := createTestSession(t, "user-1", -time.Hour)
	live := createTestSession(t, "user-2", time.Hour)
	require.NoError(t, repo.Create(ctx, expired))
	require.NoError(t, repo.Create(ctx, live))

	require.NoError(t, repo.DeleteExpired(ctx))

	_, err := repo.GetByID(ctx, expired.ID)
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.GetByID(ctx, live.ID)
	assert.NoError(t, err)
}
