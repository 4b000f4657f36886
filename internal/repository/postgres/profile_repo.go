package postgres

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT id, first_name, last_name, address, city, state, country, zip_code, user_id, created_at, updated_at
              FROM profiles WHERE user_id = $1`
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Address, &p.City, &p.State,
		&p.Country, &p.ZipCode, &p.UserID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	query := `INSERT INTO profiles (id, first_name, last_name, address, city, state, country, zip_code, user_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.FirstName, profile.LastName, profile.Address, profile.City,
		profile.State, profile.Country, profile.ZipCode, profile.UserID,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// One profile per user; a concurrent first-update lost the race.
			return apperror.Conflict("Profile already exists for this user")
		}
		return err
	}
	return nil
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	query := `UPDATE profiles SET
		first_name = $2,
		last_name = $3,
		address = $4,
		city = $5,
		state = $6,
		country = $7,
		zip_code = $8,
		updated_at = $9
	WHERE user_id = $1`
	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.FirstName, profile.LastName, profile.Address,
		profile.City, profile.State, profile.Country, profile.ZipCode,
		profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
