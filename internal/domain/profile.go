package domain

import (
	"context"
	"time"
)

// Profile holds the optional address block a user maintains for themselves.
// Exactly one row per user; created lazily by the first update.
type Profile struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  *string   `json:"last_name,omitempty"`
	Address   *string   `json:"address,omitempty"`
	City      *string   `json:"city,omitempty"`
	State     *string   `json:"state,omitempty"`
	Country   *string   `json:"country,omitempty"`
	ZipCode   *string   `json:"zip_code,omitempty"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
}

type ProfileUsecase interface {
	// UpdateMyProfile upserts the caller's profile: insert on first call,
	// in-place update afterwards.
	UpdateMyProfile(ctx context.Context, userID string, profile *Profile) (*Profile, error)
	GetMyProfile(ctx context.Context, userID string) (*Profile, error)
}
