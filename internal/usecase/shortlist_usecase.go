package usecase

import (
	"context"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/google/uuid"
)

type shortListUsecase struct {
	shortListRepo domain.ShortListRepository
	jobRepo       domain.JobRepository
	candidateRepo domain.CandidateRepository
}

func NewShortListUsecase(
	shortListRepo domain.ShortListRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
) domain.ShortListUsecase {
	return &shortListUsecase{
		shortListRepo: shortListRepo,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
	}
}

func (u *shortListUsecase) ShortListCandidate(ctx context.Context, actorID, candidateID, jobID string) (*domain.ShortListed, error) {
	if _, err := u.jobRepo.GetByIDForOwner(ctx, jobID, actorID); err != nil {
		return nil, err
	}
	if _, err := u.candidateRepo.GetByID(ctx, candidateID); err != nil {
		return nil, err
	}

	exists, err := u.shortListRepo.CheckExists(ctx, actorID, candidateID, jobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("Candidate is already shortlisted for this job")
	}

	now := time.Now()
	entry := &domain.ShortListed{
		ID:          uuid.NewString(),
		UserID:      actorID,
		CandidateID: candidateID,
		JobID:       jobID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.shortListRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (u *shortListUsecase) ListMyShortList(ctx context.Context, actorID string) ([]domain.ShortListed, error) {
	return u.shortListRepo.FetchByUser(ctx, actorID)
}

func (u *shortListUsecase) RemoveFromShortList(ctx context.Context, actorID, id string) error {
	return u.shortListRepo.Delete(ctx, id, actorID)
}
