package domain

import (
	"context"
	"time"
)

// Job type values
const (
	JobTypeFullTime = "FULL_TIME"
	JobTypePartTime = "PART_TIME"
	JobTypeHybrid   = "HYBRID"
	JobTypeRemote   = "REMOTE"
)

// Shift type values
const (
	ShiftTypeDay   = "DAY"
	ShiftTypeNight = "NIGHT"
	ShiftTypeMixed = "MIXED"
)

type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	Type         string    `json:"type"`
	ShiftType    string    `json:"shift_type"`
	DepartmentID string    `json:"department_id"`
	Location     *string   `json:"location,omitempty"`
	ExpiryDate   time.Time `json:"expiry_date"`
	CreatedByID  string    `json:"created_by_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Department *Department `json:"department,omitempty"`
}

// JobUpdate is a partial update; nil fields keep their stored value.
// DepartmentID is deliberately absent: a job never moves departments.
type JobUpdate struct {
	Title       *string
	Description *string
	Type        *string
	ShiftType   *string
	Location    *string
	ExpiryDate  *time.Time
}

type JobRepository interface {
	// Create verifies the department exists and inserts the job in one
	// transaction, so a concurrent department removal cannot leave a
	// dangling reference.
	Create(ctx context.Context, job *Job) error
	GetByIDForOwner(ctx context.Context, id, ownerID string) (*Job, error)
	FetchByOwner(ctx context.Context, ownerID string) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id, ownerID string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actorID string, job *Job) error
	GetJob(ctx context.Context, actorID, id string) (*Job, error)
	ListMyJobs(ctx context.Context, actorID string) ([]Job, error)
	UpdateJob(ctx context.Context, actorID, id string, patch *JobUpdate) (*Job, error)
	DeleteJob(ctx context.Context, actorID, id string) error
}
