package domain

import (
	"context"
	"time"
)

// Application is a candidate's application to a job (the
// candidates_on_jobs row).
type Application struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	JobID       string    `json:"job_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined data for list responses
	CandidateName *string `json:"candidate_name,omitempty"`
	JobTitle      *string `json:"job_title,omitempty"`
}

type ApplicationRepository interface {
	// Create inserts the application and, when activeResumeID is
	// non-empty, links that resume to the job in the same transaction.
	Create(ctx context.Context, app *Application, activeResumeID string) error
	CheckExists(ctx context.Context, candidateID, jobID string) (bool, error)
	FetchByJobID(ctx context.Context, jobID string) ([]Application, error)
}

type ApplicationUsecase interface {
	ApplyToJob(ctx context.Context, actorID, jobID, candidateID string) (*Application, error)
	ListJobApplicants(ctx context.Context, actorID, jobID string) ([]Candidate, error)
}
