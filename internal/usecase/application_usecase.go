package usecase

import (
	"context"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/google/uuid"
)

type applicationUsecase struct {
	appRepo       domain.ApplicationRepository
	jobRepo       domain.JobRepository
	candidateRepo domain.CandidateRepository
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:       appRepo,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
	}
}

// ApplyToJob records a candidate's application to one of the actor's
// jobs. The candidate's active resume, when present, is linked to the
// job in the same transaction.
func (u *applicationUsecase) ApplyToJob(ctx context.Context, actorID, jobID, candidateID string) (*domain.Application, error) {
	if _, err := u.jobRepo.GetByIDForOwner(ctx, jobID, actorID); err != nil {
		return nil, err
	}

	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	exists, err := u.appRepo.CheckExists(ctx, candidateID, jobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("Candidate has already applied to this job")
	}

	now := time.Now()
	app := &domain.Application{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		JobID:       jobID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	activeResumeID := ""
	if candidate.ActiveResumeID != nil {
		activeResumeID = *candidate.ActiveResumeID
	}
	if err := u.appRepo.Create(ctx, app, activeResumeID); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) ListJobApplicants(ctx context.Context, actorID, jobID string) ([]domain.Candidate, error) {
	if _, err := u.jobRepo.GetByIDForOwner(ctx, jobID, actorID); err != nil {
		return nil, err
	}
	return u.candidateRepo.FetchByJobID(ctx, jobID)
}
