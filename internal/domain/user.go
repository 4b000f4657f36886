package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User roles
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone,omitempty"`
	Password      string    `json:"-"` // bcrypt hash, never serialized
	Role          string    `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	PhoneVerified bool      `json:"phone_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Eagerly attached relation, present on /me reads
	Profile *Profile `json:"profile,omitempty"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetWithProfile(ctx context.Context, id string) (*User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type AuthUsecase interface {
	Register(ctx context.Context, user *User, password string) (*User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
