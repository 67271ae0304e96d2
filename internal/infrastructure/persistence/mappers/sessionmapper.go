package mappers

import (
	"tally/internal/domain/user"
	"tally/internal/infrastructure/persistence/models"
)

// SessionMapper handles the conversion between Session domain entities
// and persistence models.
type SessionMapper interface {
	ToModel(entity *user.Session) *models.SessionModel
	ToDomain(model *models.SessionModel) *user.Session
}

type sessionMapper struct{}

// NewSessionMapper creates a new SessionMapper.
func NewSessionMapper() SessionMapper {
	return &sessionMapper{}
}

func (m *sessionMapper) ToModel(entity *user.Session) *models.SessionModel {
	if entity == nil {
		return nil
	}
	return &models.SessionModel{
		ID:        entity.ID,
		UserID:    entity.UserID,
		ExpiresAt: entity.ExpiresAt,
		CreatedAt: entity.CreatedAt,
	}
}

func (m *sessionMapper) ToDomain(model *models.SessionModel) *user.Session {
	if model == nil {
		return nil
	}
	return &user.Session{
		ID:        model.ID,
		UserID:    model.UserID,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
	}
}
