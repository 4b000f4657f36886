package usecase

import (
	"context"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"
	"go-ats-backend/pkg/logger"
	"go-ats-backend/pkg/storage"

	"github.com/google/uuid"
)

// ObjectStore is the slice of the storage uploader the resume flow needs.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte) (*storage.ObjectDescriptor, error)
	Delete(ctx context.Context, key string) error
}

type resumeUsecase struct {
	resumeRepo    domain.ResumeRepository
	candidateRepo domain.CandidateRepository
	jobRepo       domain.JobRepository
	store         ObjectStore
}

func NewResumeUsecase(
	resumeRepo domain.ResumeRepository,
	candidateRepo domain.CandidateRepository,
	jobRepo domain.JobRepository,
	store ObjectStore,
) domain.ResumeUsecase {
	return &resumeUsecase{
		resumeRepo:    resumeRepo,
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		store:         store,
	}
}

// UploadResume pushes the PDF to object storage and records the resume
// row. When the row write fails the uploaded object is deleted
// best-effort; a failed cleanup is logged and swallowed so the caller
// sees the original error.
func (u *resumeUsecase) UploadResume(ctx context.Context, candidateID string, data []byte) (*domain.Resume, error) {
	if err := storage.ValidatePDF(data); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	if _, err := u.candidateRepo.GetByID(ctx, candidateID); err != nil {
		return nil, err
	}

	key := "resumes/" + uuid.NewString() + ".pdf"
	desc, err := u.store.Upload(ctx, key, data)
	if err != nil {
		return nil, apperror.Upstream("Failed to store resume", err)
	}

	now := time.Now()
	resume := &domain.Resume{
		ID:          uuid.NewString(),
		URL:         desc.FullPath,
		CandidateID: candidateID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.resumeRepo.Create(ctx, resume); err != nil {
		if cleanupErr := u.store.Delete(ctx, key); cleanupErr != nil {
			logger.Log.Warn("orphaned resume object left in storage",
				"key", key, "error", cleanupErr)
		}
		return nil, err
	}

	// The freshest upload becomes the candidate's active resume.
	if err := u.candidateRepo.SetActiveResume(ctx, candidateID, resume.ID); err != nil {
		logger.Log.Warn("failed to set active resume", "candidate_id", candidateID, "error", err)
	}

	return resume, nil
}

// AttachToJob links an existing resume to a job owned by the actor.
func (u *resumeUsecase) AttachToJob(ctx context.Context, actorID, jobID, resumeID string) error {
	if _, err := u.jobRepo.GetByIDForOwner(ctx, jobID, actorID); err != nil {
		return err
	}
	if _, err := u.resumeRepo.GetByID(ctx, resumeID); err != nil {
		return err
	}
	return u.resumeRepo.LinkToJob(ctx, jobID, resumeID)
}
