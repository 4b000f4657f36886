package postgres

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// Create checks the target department inside the insert transaction so the
// job can never reference a department that was removed concurrently.
func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM departments WHERE id = $1 AND is_deleted = FALSE)`,
		job.DepartmentID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("Department not found")
	}

	query := `INSERT INTO jobs (id, title, description, type, shift_type, department_id, location, expiry_date, created_by_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Type, job.ShiftType,
		job.DepartmentID, job.Location, job.ExpiryDate, job.CreatedByID,
		job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetByIDForOwner returns the job with its department attached.
func (r *jobRepo) GetByIDForOwner(ctx context.Context, id, ownerID string) (*domain.Job, error) {
	query := `
		SELECT
			j.id, j.title, j.description, j.type, j.shift_type, j.department_id,
			j.location, j.expiry_date, j.created_by_id, j.created_at, j.updated_at,
			d.id, d.title, d.description, d.is_deleted, d.created_by_id, d.created_at, d.updated_at
		FROM jobs j
		JOIN departments d ON j.department_id = d.id
		WHERE j.id = $1 AND j.created_by_id = $2`

	var job domain.Job
	var dept domain.Department
	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(
		&job.ID, &job.Title, &job.Description, &job.Type, &job.ShiftType, &job.DepartmentID,
		&job.Location, &job.ExpiryDate, &job.CreatedByID, &job.CreatedAt, &job.UpdatedAt,
		&dept.ID, &dept.Title, &dept.Description, &dept.IsDeleted, &dept.CreatedByID,
		&dept.CreatedAt, &dept.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	job.Department = &dept
	return &job, nil
}

func (r *jobRepo) FetchByOwner(ctx context.Context, ownerID string) ([]domain.Job, error) {
	query := `
		SELECT
			j.id, j.title, j.description, j.type, j.shift_type, j.department_id,
			j.location, j.expiry_date, j.created_by_id, j.created_at, j.updated_at,
			d.id, d.title, d.description, d.is_deleted, d.created_by_id, d.created_at, d.updated_at
		FROM jobs j
		JOIN departments d ON j.department_id = d.id
		WHERE j.created_by_id = $1
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		var dept domain.Department
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, &job.Type, &job.ShiftType, &job.DepartmentID,
			&job.Location, &job.ExpiryDate, &job.CreatedByID, &job.CreatedAt, &job.UpdatedAt,
			&dept.ID, &dept.Title, &dept.Description, &dept.IsDeleted, &dept.CreatedByID,
			&dept.CreatedAt, &dept.UpdatedAt,
		); err != nil {
			return nil, err
		}
		job.Department = &dept
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $3,
		description = $4,
		type = $5,
		shift_type = $6,
		location = $7,
		expiry_date = $8,
		updated_at = $9
	WHERE id = $1 AND created_by_id = $2`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.CreatedByID, job.Title, job.Description, job.Type,
		job.ShiftType, job.Location, job.ExpiryDate, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete is a hard delete; departments are the only soft-deleted entity.
func (r *jobRepo) Delete(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM jobs WHERE id = $1 AND created_by_id = $2`
	result, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
