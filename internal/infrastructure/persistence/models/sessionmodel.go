package models

import "time"

// SessionModel represents the database persistence model for sessions.
// The unique index on UserID enforces the single-active-session policy
// at the store level, so concurrent logins cannot leave duplicates.
type SessionModel struct {
	ID        string    `gorm:"primarykey;size:64"`
	UserID    string    `gorm:"not null;uniqueIndex;size:36"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}
