package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tally/internal/domain/user"
	"tally/internal/infrastructure/persistence/mappers"
	"tally/internal/infrastructure/persistence/models"
	"tally/internal/shared/biztime"
	"tally/internal/shared/errors"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

func NewSessionRepository(db *gorm.DB) user.SessionRepository {
	return &SessionRepository{
		db:     db,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *user.Session) error {
	model := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if err == gorm.ErrDuplicatedKey {
			return errors.NewConflictError("session already exists")
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	var model models.SessionModel
	err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", sessionID).Delete(&models.SessionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("session not found")
	}
	return nil
}

func (r *SessionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete sessions by user ID: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("expires_at <= ?", biztime.NowUTC()).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}
