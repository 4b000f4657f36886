package usecase

import (
	"context"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/google/uuid"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository) domain.CandidateUsecase {
	return &candidateUsecase{candidateRepo: candidateRepo}
}

func (u *candidateUsecase) CreateCandidate(ctx context.Context, candidate *domain.Candidate) error {
	if candidate.Name == "" {
		return apperror.BadRequest("Name is required")
	}
	if candidate.Age != nil && *candidate.Age <= 0 {
		return apperror.BadRequest("Age must be positive")
	}
	if candidate.Score != nil && *candidate.Score <= 0 {
		return apperror.BadRequest("Score must be positive")
	}

	candidate.ID = uuid.NewString()
	candidate.CreatedAt = time.Now()
	candidate.UpdatedAt = candidate.CreatedAt

	return u.candidateRepo.Create(ctx, candidate)
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	return u.candidateRepo.GetWithResumes(ctx, id)
}

func (u *candidateUsecase) ListCandidates(ctx context.Context, page, pageSize int) ([]domain.Candidate, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.candidateRepo.Fetch(ctx, pageSize, offset)
}

// UpdateCandidate merges the patch over the stored row so that omitted
// fields survive the write untouched.
func (u *candidateUsecase) UpdateCandidate(ctx context.Context, id string, patch *domain.CandidateUpdate) (*domain.Candidate, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, apperror.BadRequest("Name cannot be empty")
	}
	if patch.Age != nil && *patch.Age <= 0 {
		return nil, apperror.BadRequest("Age must be positive")
	}
	if patch.Score != nil && *patch.Score <= 0 {
		return nil, apperror.BadRequest("Score must be positive")
	}

	candidate, err := u.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		candidate.Name = *patch.Name
	}
	if patch.Email != nil {
		candidate.Email = patch.Email
	}
	if patch.Phone != nil {
		candidate.Phone = patch.Phone
	}
	if patch.Address != nil {
		candidate.Address = patch.Address
	}
	if patch.City != nil {
		candidate.City = patch.City
	}
	if patch.State != nil {
		candidate.State = patch.State
	}
	if patch.Country != nil {
		candidate.Country = patch.Country
	}
	if patch.ZipCode != nil {
		candidate.ZipCode = patch.ZipCode
	}
	if patch.Age != nil {
		candidate.Age = patch.Age
	}
	if patch.Dob != nil {
		candidate.Dob = patch.Dob
	}
	if patch.Gender != nil {
		candidate.Gender = patch.Gender
	}
	if patch.JobExperience != nil {
		candidate.JobExperience = patch.JobExperience
	}
	if patch.TotalExperience != nil {
		candidate.TotalExperience = patch.TotalExperience
	}
	if patch.RelevantExperience != nil {
		candidate.RelevantExperience = patch.RelevantExperience
	}
	if patch.Skills != nil {
		candidate.Skills = patch.Skills
	}
	if patch.Pros != nil {
		candidate.Pros = patch.Pros
	}
	if patch.Cons != nil {
		candidate.Cons = patch.Cons
	}
	if patch.Score != nil {
		candidate.Score = patch.Score
	}

	candidate.UpdatedAt = time.Now()
	if err := u.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}
