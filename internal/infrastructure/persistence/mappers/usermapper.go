package mappers

import (
	"tally/internal/domain/user"
	"tally/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and
// persistence models.
type UserMapper interface {
	ToModel(entity *user.User) *models.UserModel
	ToDomain(model *models.UserModel) *user.User
}

type userMapper struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID,
		Name:         entity.Name,
		Email:        entity.Email,
		Role:         string(entity.Role),
		Password:     entity.Password,
		CounterValue: entity.CounterValue,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func (m *userMapper) ToDomain(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return &user.User{
		ID:           model.ID,
		Name:         model.Name,
		Email:        model.Email,
		Role:         user.Role(model.Role),
		Password:     model.Password,
		CounterValue: model.CounterValue,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
