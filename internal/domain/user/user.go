package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tally/internal/shared/biztime"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an account record. The password is stored and compared as-is
// to keep the externally observable contract of the original demo; any
// real deployment must substitute a salted one-way hash before launch.
type User struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	Password     string
	CounterValue int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewUser(name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	now := biztime.NowUTC()
	return &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Role:         RoleUser,
		Password:     password,
		CounterValue: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// VerifyPassword checks the supplied password against the stored value.
func (u *User) VerifyPassword(password string) bool {
	return u.Password == password
}

// ChangePassword replaces the stored password after verifying the
// current one and rejecting a no-op change.
func (u *User) ChangePassword(currentPassword, newPassword string) error {
	if !u.VerifyPassword(currentPassword) {
		return fmt.Errorf("current password is incorrect")
	}
	if currentPassword == newPassword {
		return fmt.Errorf("new password must be different from the current password")
	}
	u.Password = newPassword
	u.UpdatedAt = biztime.NowUTC()
	return nil
}

// SetCounter updates the per-user counter value.
func (u *User) SetCounter(value int) {
	u.CounterValue = value
	u.UpdatedAt = biztime.NowUTC()
}

// Repository persists user records. Lookups return (nil, nil) when no
// record matches; errors are reserved for store faults.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}
