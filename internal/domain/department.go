package domain

import (
	"context"
	"time"
)

// Department groups job postings. Deletion is logical (is_deleted) so
// historical jobs keep a valid department reference.
type Department struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	IsDeleted   bool      `json:"is_deleted"`
	CreatedByID string    `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Jobs []Job `json:"jobs,omitempty"`
}

// DepartmentUpdate is a partial update; nil fields keep their stored
// value.
type DepartmentUpdate struct {
	Title       *string
	Description *string
}

type DepartmentRepository interface {
	Create(ctx context.Context, dept *Department) error
	GetByIDForOwner(ctx context.Context, id, ownerID string) (*Department, error)
	GetWithJobs(ctx context.Context, id, ownerID string) (*Department, error)
	FetchByOwner(ctx context.Context, ownerID string) ([]Department, error)
	FetchAll(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, dept *Department) error
	SoftDelete(ctx context.Context, id, ownerID string) error
}

type DepartmentUsecase interface {
	CreateDepartment(ctx context.Context, actorID string, dept *Department) error
	GetDepartment(ctx context.Context, actorID, id string) (*Department, error)
	ListMyDepartments(ctx context.Context, actorID string) ([]Department, error)
	// ListAllDepartments is the one deliberately unscoped read: the
	// department dropdown on job creation shows every active department.
	ListAllDepartments(ctx context.Context) ([]Department, error)
	UpdateDepartment(ctx context.Context, actorID, id string, patch *DepartmentUpdate) (*Department, error)
	DeleteDepartment(ctx context.Context, actorID, id string) error
}
