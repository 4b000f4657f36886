package postgres

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type shortListRepo struct {
	db *pgxpool.Pool
}

func NewShortListRepository(db *pgxpool.Pool) domain.ShortListRepository {
	return &shortListRepo{db: db}
}

func (r *shortListRepo) Create(ctx context.Context, entry *domain.ShortListed) error {
	query := `INSERT INTO short_listed (id, user_id, candidate_id, job_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		entry.ID, entry.UserID, entry.CandidateID, entry.JobID,
		entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return apperror.Conflict("Candidate is already shortlisted for this job")
			case pgForeignKeyViolation:
				return domain.ErrNotFound
			}
		}
		return err
	}
	return nil
}

func (r *shortListRepo) CheckExists(ctx context.Context, userID, candidateID, jobID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM short_listed WHERE user_id = $1 AND candidate_id = $2 AND job_id = $3)`,
		userID, candidateID, jobID,
	).Scan(&exists)
	return exists, err
}

// FetchByUser returns the caller's shortlist with candidate and job
// summaries attached.
func (r *shortListRepo) FetchByUser(ctx context.Context, userID string) ([]domain.ShortListed, error) {
	query := `
		SELECT
			s.id, s.user_id, s.candidate_id, s.job_id, s.created_at, s.updated_at,
			c.id, c.name, c.email, c.phone, c.score,
			j.id, j.title, j.type, j.shift_type, j.department_id, j.expiry_date
		FROM short_listed s
		JOIN candidates c ON s.candidate_id = c.id
		JOIN jobs j ON s.job_id = j.id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ShortListed
	for rows.Next() {
		var entry domain.ShortListed
		var candidate domain.Candidate
		var job domain.Job
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.CandidateID, &entry.JobID,
			&entry.CreatedAt, &entry.UpdatedAt,
			&candidate.ID, &candidate.Name, &candidate.Email, &candidate.Phone, &candidate.Score,
			&job.ID, &job.Title, &job.Type, &job.ShiftType, &job.DepartmentID, &job.ExpiryDate,
		); err != nil {
			return nil, err
		}
		entry.Candidate = &candidate
		entry.Job = &job
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *shortListRepo) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM short_listed WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
