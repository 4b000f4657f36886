package domain

import (
	"context"
	"time"
)

type Resume struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	CandidateID string    `json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, id string) (*Resume, error)
	FetchByCandidateID(ctx context.Context, candidateID string) ([]Resume, error)
	// LinkToJob records the jobs-and-resumes association. Idempotent.
	LinkToJob(ctx context.Context, jobID, resumeID string) error
}

type ResumeUsecase interface {
	// UploadResume stores the PDF in object storage, then persists the
	// resume row pointing at it. If the row write fails the uploaded
	// object is removed best-effort.
	UploadResume(ctx context.Context, candidateID string, data []byte) (*Resume, error)
	AttachToJob(ctx context.Context, actorID, jobID, resumeID string) error
}
