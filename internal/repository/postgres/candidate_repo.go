package postgres

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateColumns = `id, name, email, phone, address, city, state, country, zip_code,
	age, dob, gender, job_experience, total_experience, relevant_experience, skills,
	pros, cons, score, active_resume_id, created_at, updated_at`

func (r *candidateRepo) scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	var pros, cons []string
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City, &c.State,
		&c.Country, &c.ZipCode, &c.Age, &c.Dob, &c.Gender,
		&c.JobExperience, &c.TotalExperience, &c.RelevantExperience, &c.Skills,
		pq.Array(&pros), pq.Array(&cons), &c.Score, &c.ActiveResumeID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Pros = pros
	c.Cons = cons
	return &c, nil
}

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `INSERT INTO candidates (` + candidateColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.db.Exec(ctx, query,
		candidate.ID, candidate.Name, candidate.Email, candidate.Phone,
		candidate.Address, candidate.City, candidate.State, candidate.Country,
		candidate.ZipCode, candidate.Age, candidate.Dob, candidate.Gender,
		candidate.JobExperience, candidate.TotalExperience, candidate.RelevantExperience,
		candidate.Skills, pq.Array(candidate.Pros), pq.Array(candidate.Cons),
		candidate.Score, candidate.ActiveResumeID,
		candidate.CreatedAt, candidate.UpdatedAt,
	)
	return err
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	c, err := r.scanCandidate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// GetWithResumes attaches all of the candidate's resumes, newest first.
func (r *candidateRepo) GetWithResumes(ctx context.Context, id string) (*domain.Candidate, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, url, candidate_id, created_at, updated_at
              FROM resumes WHERE candidate_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resume domain.Resume
		if err := rows.Scan(&resume.ID, &resume.URL, &resume.CandidateID, &resume.CreatedAt, &resume.UpdatedAt); err != nil {
			return nil, err
		}
		c.Resumes = append(c.Resumes, resume)
	}
	return c, rows.Err()
}

func (r *candidateRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Candidate, int64, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		c, err := r.scanCandidate(rows)
		if err != nil {
			return nil, 0, err
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return candidates, total, nil
}

// FetchByJobID returns candidates who applied to the job.
func (r *candidateRepo) FetchByJobID(ctx context.Context, jobID string) ([]domain.Candidate, error) {
	query := `SELECT c.id, c.name, c.email, c.phone, c.address, c.city, c.state, c.country, c.zip_code,
                c.age, c.dob, c.gender, c.job_experience, c.total_experience, c.relevant_experience, c.skills,
                c.pros, c.cons, c.score, c.active_resume_id, c.created_at, c.updated_at
              FROM candidates c
              JOIN candidates_on_jobs coj ON coj.candidate_id = c.id
              WHERE coj.job_id = $1
              ORDER BY coj.created_at DESC`
	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		c, err := r.scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	query := `UPDATE candidates SET
		name = $2, email = $3, phone = $4, address = $5, city = $6, state = $7,
		country = $8, zip_code = $9, age = $10, dob = $11, gender = $12,
		job_experience = $13, total_experience = $14, relevant_experience = $15,
		skills = $16, pros = $17, cons = $18, score = $19, updated_at = $20
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		candidate.ID, candidate.Name, candidate.Email, candidate.Phone,
		candidate.Address, candidate.City, candidate.State, candidate.Country,
		candidate.ZipCode, candidate.Age, candidate.Dob, candidate.Gender,
		candidate.JobExperience, candidate.TotalExperience, candidate.RelevantExperience,
		candidate.Skills, pq.Array(candidate.Pros), pq.Array(candidate.Cons),
		candidate.Score, candidate.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) SetActiveResume(ctx context.Context, id, resumeID string) error {
	query := `UPDATE candidates SET active_resume_id = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, resumeID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
