package usecase

import (
	"context"
	"errors"
	"time"

	"go-ats-backend/internal/domain"

	"github.com/google/uuid"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
}

func NewProfileUsecase(profileRepo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

// UpdateMyProfile is an upsert: the first update creates the caller's
// single profile row, later updates mutate it in place. UserID always
// comes from the actor, never from the payload.
func (u *profileUsecase) UpdateMyProfile(ctx context.Context, userID string, profile *domain.Profile) (*domain.Profile, error) {
	profile.UserID = userID
	profile.UpdatedAt = time.Now()

	existing, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		profile.ID = uuid.NewString()
		profile.CreatedAt = profile.UpdatedAt
		if err := u.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) GetMyProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return u.profileRepo.GetByUserID(ctx, userID)
}
