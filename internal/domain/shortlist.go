package domain

import (
	"context"
	"time"
)

// ShortListed marks a candidate as shortlisted for a job by a user.
// Rows are visible only to the user who created them.
type ShortListed struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CandidateID string    `json:"candidate_id"`
	JobID       string    `json:"job_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Candidate *Candidate `json:"candidate,omitempty"`
	Job       *Job       `json:"job,omitempty"`
}

type ShortListRepository interface {
	Create(ctx context.Context, entry *ShortListed) error
	CheckExists(ctx context.Context, userID, candidateID, jobID string) (bool, error)
	FetchByUser(ctx context.Context, userID string) ([]ShortListed, error)
	Delete(ctx context.Context, id, userID string) error
}

type ShortListUsecase interface {
	ShortListCandidate(ctx context.Context, actorID, candidateID, jobID string) (*ShortListed, error)
	ListMyShortList(ctx context.Context, actorID string) ([]ShortListed, error)
	RemoveFromShortList(ctx context.Context, actorID, id string) error
}
