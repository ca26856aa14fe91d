package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vizerhq/jobboard/internal/core/domain"
	"github.com/vizerhq/jobboard/internal/core/ports"
)

const userColumns = `id, email, username, full_name, password_hash,
	age, location, gender, skills, education, experience, interests, bio,
	created_at, updated_at`

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE lower(email) = lower($1) OR lower(username) = lower($1)
		LIMIT 1`
	return r.scanUser(r.db.QueryRow(ctx, query, identifier))
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (email, username, full_name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		user.Email, user.Username, user.FullName, user.PasswordHash, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		// Either identity index tripping maps to the same generic conflict.
		if isUniqueViolation(err, "") {
			return nil, domain.ErrIdentifierTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, update ports.ProfileUpdate) (*domain.User, error) {
	query := `UPDATE users SET
			full_name  = COALESCE($2,  full_name),
			age        = COALESCE($3,  age),
			location   = COALESCE($4,  location),
			gender     = COALESCE($5,  gender),
			skills     = COALESCE($6,  skills),
			education  = COALESCE($7,  education),
			experience = COALESCE($8,  experience),
			interests  = COALESCE($9,  interests),
			bio        = COALESCE($10, bio),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	return r.scanUser(r.db.QueryRow(ctx, query, id,
		update.FullName, update.Age, update.Location, update.Gender,
		update.Skills, update.Education, update.Experience, update.Interests, update.Bio))
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.FullName, &u.PasswordHash,
		&u.Profile.Age, &u.Profile.Location, &u.Profile.Gender, &u.Profile.Skills,
		&u.Profile.Education, &u.Profile.Experience, &u.Profile.Interests, &u.Profile.Bio,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
