package usecase

import (
	"context"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, actorID string, job *domain.Job) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.DepartmentID == "" {
		return apperror.BadRequest("Department is required")
	}

	job.ID = uuid.NewString()
	job.CreatedByID = actorID
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJob(ctx context.Context, actorID, id string) (*domain.Job, error) {
	return u.jobRepo.GetByIDForOwner(ctx, id, actorID)
}

func (u *jobUsecase) ListMyJobs(ctx context.Context, actorID string) ([]domain.Job, error) {
	return u.jobRepo.FetchByOwner(ctx, actorID)
}

// UpdateJob merges the patch over the stored row so that omitted fields
// survive the write untouched.
func (u *jobUsecase) UpdateJob(ctx context.Context, actorID, id string, patch *domain.JobUpdate) (*domain.Job, error) {
	job, err := u.jobRepo.GetByIDForOwner(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, apperror.BadRequest("Title cannot be empty")
		}
		job.Title = *patch.Title
	}
	if patch.Description != nil {
		job.Description = patch.Description
	}
	if patch.Type != nil {
		job.Type = *patch.Type
	}
	if patch.ShiftType != nil {
		job.ShiftType = *patch.ShiftType
	}
	if patch.Location != nil {
		job.Location = patch.Location
	}
	if patch.ExpiryDate != nil {
		job.ExpiryDate = *patch.ExpiryDate
	}

	job.UpdatedAt = time.Now()
	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, actorID, id string) error {
	return u.jobRepo.Delete(ctx, id, actorID)
}
