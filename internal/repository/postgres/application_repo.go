package postgres

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts the application and the resume link in one transaction:
// either the candidate is applied with their active resume attached to
// the job, or nothing is written.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application, activeResumeID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO candidates_on_jobs (id, candidate_id, job_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5)`
	_, err = tx.Exec(ctx, query,
		app.ID, app.CandidateID, app.JobID, app.CreatedAt, app.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return apperror.Conflict("Candidate has already applied to this job")
			case pgForeignKeyViolation:
				return domain.ErrNotFound
			}
		}
		return err
	}

	if activeResumeID != "" {
		linkQuery := `INSERT INTO jobs_and_resumes (job_id, resume_id)
                      VALUES ($1, $2)
                      ON CONFLICT (job_id, resume_id) DO NOTHING`
		if _, err := tx.Exec(ctx, linkQuery, app.JobID, activeResumeID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *applicationRepo) CheckExists(ctx context.Context, candidateID, jobID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM candidates_on_jobs WHERE candidate_id = $1 AND job_id = $2)`,
		candidateID, jobID,
	).Scan(&exists)
	return exists, err
}

// FetchByJobID returns applications with candidate and job names joined
// for list responses.
func (r *applicationRepo) FetchByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	query := `
		SELECT
			coj.id, coj.candidate_id, coj.job_id, coj.created_at, coj.updated_at,
			c.name as candidate_name,
			j.title as job_title
		FROM candidates_on_jobs coj
		LEFT JOIN candidates c ON coj.candidate_id = c.id
		LEFT JOIN jobs j ON coj.job_id = j.id
		WHERE coj.job_id = $1
		ORDER BY coj.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.CandidateID, &app.JobID, &app.CreatedAt, &app.UpdatedAt,
			&app.CandidateName, &app.JobTitle,
		); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}
