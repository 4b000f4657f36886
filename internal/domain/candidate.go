package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Gender values
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)

// Candidate is an applicant sourced from a resume upload. The experience
// and skills columns hold free-form structured JSON produced by the
// intake flow; pros/cons are plain lists.
type Candidate struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Email              *string         `json:"email,omitempty"`
	Phone              *string         `json:"phone,omitempty"`
	Address            *string         `json:"address,omitempty"`
	City               *string         `json:"city,omitempty"`
	State              *string         `json:"state,omitempty"`
	Country            *string         `json:"country,omitempty"`
	ZipCode            *string         `json:"zip_code,omitempty"`
	Age                *int            `json:"age,omitempty"`
	Dob                *time.Time      `json:"dob,omitempty"`
	Gender             *string         `json:"gender,omitempty"`
	JobExperience      json.RawMessage `json:"job_experience,omitempty"`
	TotalExperience    json.RawMessage `json:"total_experience,omitempty"`
	RelevantExperience json.RawMessage `json:"relevant_experience,omitempty"`
	Skills             json.RawMessage `json:"skills,omitempty"`
	Pros               []string        `json:"pros,omitempty"`
	Cons               []string        `json:"cons,omitempty"`
	Score              *float64        `json:"score,omitempty"`
	ActiveResumeID     *string         `json:"active_resume_id,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`

	Resumes []Resume `json:"resumes,omitempty"`
}

// CandidateUpdate is a partial update; nil fields keep their stored value.
type CandidateUpdate struct {
	Name               *string
	Email              *string
	Phone              *string
	Address            *string
	City               *string
	State              *string
	Country            *string
	ZipCode            *string
	Age                *int
	Dob                *time.Time
	Gender             *string
	JobExperience      json.RawMessage
	TotalExperience    json.RawMessage
	RelevantExperience json.RawMessage
	Skills             json.RawMessage
	Pros               []string
	Cons               []string
	Score              *float64
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) error
	GetByID(ctx context.Context, id string) (*Candidate, error)
	GetWithResumes(ctx context.Context, id string) (*Candidate, error)
	Fetch(ctx context.Context, limit, offset int) ([]Candidate, int64, error)
	FetchByJobID(ctx context.Context, jobID string) ([]Candidate, error)
	Update(ctx context.Context, candidate *Candidate) error
	SetActiveResume(ctx context.Context, id, resumeID string) error
}

type CandidateUsecase interface {
	CreateCandidate(ctx context.Context, candidate *Candidate) error
	GetCandidate(ctx context.Context, id string) (*Candidate, error)
	ListCandidates(ctx context.Context, page, pageSize int) ([]Candidate, int64, error)
	UpdateCandidate(ctx context.Context, id string, patch *CandidateUpdate) (*Candidate, error)
}
