package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/domain/user"
	"tally/internal/shared/errors"
)

func TestUpdateCounterUseCase_Execute(t *testing.T) {
	t.Run("stores and returns new value", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		uc := NewUpdateCounterUseCase(userRepo, noopLogger{})

		existing, err := user.NewUser("Alice", "alice@example.com", "secret1")
		require.NoError(t, err)
		userRepo.add(existing)

		updated, err := uc.Execute(context.Background(), existing.ID, UpdateCounterCommand{CounterValue: 42})
		require.NoError(t, err)
		assert.Equal(t, 42, updated.CounterValue)

		stored, err := userRepo.GetByID(context.Background(), existing.ID)
		require.NoError(t, err)
		assert.Equal(t, 42, stored.CounterValue)
	})

	t.Run("accepts zero and negative values", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		uc := NewUpdateCounterUseCase(userRepo, noopLogger{})

		existing, err := user.NewUser("Alice", "alice@example.com", "secret1")
		require.NoError(t, err)
		userRepo.add(existing)

		updated, err := uc.Execute(context.Background(), existing.ID, UpdateCounterCommand{CounterValue: -3})
		require.NoError(t, err)
		assert.Equal(t, -3, updated.CounterValue)

		updated, err = uc.Execute(context.Background(), existing.ID, UpdateCounterCommand{CounterValue: 0})
		require.NoError(t, err)
		assert.Equal(t, 0, updated.CounterValue)
	})

	t.Run("user gone", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		uc := NewUpdateCounterUseCase(userRepo, noopLogger{})

		_, err := uc.Execute(context.Background(), "deleted-user", UpdateCounterCommand{CounterValue: 1})
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestGetProfileUseCase_Execute(t *testing.T) {
	t.Run("returns user", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		uc := NewGetProfileUseCase(userRepo, noopLogger{})

		existing, err := user.NewUser("Alice", "alice@example.com", "secret1")
		require.NoError(t, err)
		userRepo.add(existing)

		got, err := uc.Execute(context.Background(), existing.ID)
		require.NoError(t, err)
		assert.Equal(t, existing.Email, got.Email)
	})

	t.Run("user gone", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		uc := NewGetProfileUseCase(userRepo, noopLogger{})

		_, err := uc.Execute(context.Background(), "deleted-user")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}
