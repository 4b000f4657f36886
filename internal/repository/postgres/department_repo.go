package postgres

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type departmentRepo struct {
	db *pgxpool.Pool
}

func NewDepartmentRepository(db *pgxpool.Pool) domain.DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) Create(ctx context.Context, dept *domain.Department) error {
	query := `INSERT INTO departments (id, title, description, is_deleted, created_by_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		dept.ID, dept.Title, dept.Description, dept.IsDeleted, dept.CreatedByID,
		dept.CreatedAt, dept.UpdatedAt,
	)
	return err
}

func (r *departmentRepo) GetByIDForOwner(ctx context.Context, id, ownerID string) (*domain.Department, error) {
	query := `SELECT id, title, description, is_deleted, created_by_id, created_at, updated_at
              FROM departments WHERE id = $1 AND created_by_id = $2 AND is_deleted = FALSE`
	var dept domain.Department
	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(
		&dept.ID, &dept.Title, &dept.Description, &dept.IsDeleted, &dept.CreatedByID,
		&dept.CreatedAt, &dept.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &dept, nil
}

// GetWithJobs attaches the owner's jobs under the department, newest
// first. Jobs another user filed under the same department stay out of
// the view.
func (r *departmentRepo) GetWithJobs(ctx context.Context, id, ownerID string) (*domain.Department, error) {
	dept, err := r.GetByIDForOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, title, description, type, shift_type, department_id, location, expiry_date, created_by_id, created_at, updated_at
              FROM jobs WHERE department_id = $1 AND created_by_id = $2 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, id, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, &job.Type, &job.ShiftType,
			&job.DepartmentID, &job.Location, &job.ExpiryDate, &job.CreatedByID,
			&job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		dept.Jobs = append(dept.Jobs, job)
	}
	return dept, rows.Err()
}

func (r *departmentRepo) FetchByOwner(ctx context.Context, ownerID string) ([]domain.Department, error) {
	query := `SELECT id, title, description, is_deleted, created_by_id, created_at, updated_at
              FROM departments WHERE created_by_id = $1 AND is_deleted = FALSE ORDER BY created_at DESC`
	return r.fetch(ctx, query, ownerID)
}

// FetchAll returns every active department regardless of owner. Feeds the
// department dropdown on job creation.
func (r *departmentRepo) FetchAll(ctx context.Context) ([]domain.Department, error) {
	query := `SELECT id, title, description, is_deleted, created_by_id, created_at, updated_at
              FROM departments WHERE is_deleted = FALSE ORDER BY title ASC`
	return r.fetch(ctx, query)
}

func (r *departmentRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.Department, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var depts []domain.Department
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(
			&dept.ID, &dept.Title, &dept.Description, &dept.IsDeleted, &dept.CreatedByID,
			&dept.CreatedAt, &dept.UpdatedAt,
		); err != nil {
			return nil, err
		}
		depts = append(depts, dept)
	}
	return depts, rows.Err()
}

func (r *departmentRepo) Update(ctx context.Context, dept *domain.Department) error {
	query := `UPDATE departments SET
		title = $3,
		description = $4,
		updated_at = $5
	WHERE id = $1 AND created_by_id = $2 AND is_deleted = FALSE`
	result, err := r.db.Exec(ctx, query,
		dept.ID, dept.CreatedByID, dept.Title, dept.Description, dept.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete flips is_deleted; the row stays so historical jobs keep a
// valid department reference.
func (r *departmentRepo) SoftDelete(ctx context.Context, id, ownerID string) error {
	query := `UPDATE departments SET is_deleted = TRUE, updated_at = NOW()
              WHERE id = $1 AND created_by_id = $2 AND is_deleted = FALSE`
	result, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
