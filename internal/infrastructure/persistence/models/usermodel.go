package models

import "time"

// UserModel represents the database persistence model for users.
// This is the anti-corruption layer between domain and database.
type UserModel struct {
	ID           string `gorm:"primarykey;size:36"`
	Name         string `gorm:"not null;size:100"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	Role         string `gorm:"not null;default:user;size:20"`
	Password     string `gorm:"not null;size:255"`
	CounterValue int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}
