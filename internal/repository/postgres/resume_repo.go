package postgres

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	query := `INSERT INTO resumes (id, url, candidate_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query,
		resume.ID, resume.URL, resume.CandidateID, resume.CreatedAt, resume.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *resumeRepo) GetByID(ctx context.Context, id string) (*domain.Resume, error) {
	query := `SELECT id, url, candidate_id, created_at, updated_at FROM resumes WHERE id = $1`
	var resume domain.Resume
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resume.ID, &resume.URL, &resume.CandidateID, &resume.CreatedAt, &resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepo) FetchByCandidateID(ctx context.Context, candidateID string) ([]domain.Resume, error) {
	query := `SELECT id, url, candidate_id, created_at, updated_at
              FROM resumes WHERE candidate_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []domain.Resume
	for rows.Next() {
		var resume domain.Resume
		if err := rows.Scan(&resume.ID, &resume.URL, &resume.CandidateID, &resume.CreatedAt, &resume.UpdatedAt); err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}

// LinkToJob records the job/resume association. Re-linking the same pair
// is a no-op.
func (r *resumeRepo) LinkToJob(ctx context.Context, jobID, resumeID string) error {
	query := `INSERT INTO jobs_and_resumes (job_id, resume_id)
              VALUES ($1, $2)
              ON CONFLICT (job_id, resume_id) DO NOTHING`
	_, err := r.db.Exec(ctx, query, jobID, resumeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}
