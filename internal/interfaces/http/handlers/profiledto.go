package handlers

import "tally/internal/domain/user"

// ProfileDTO is the user representation returned inside the envelope.
// Field names are camelCase to match the original client contract.
type ProfileDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	CounterValue int    `json:"counterValue"`
}

func NewProfileDTO(u *user.User) ProfileDTO {
	return ProfileDTO{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		CounterValue: u.CounterValue,
	}
}
