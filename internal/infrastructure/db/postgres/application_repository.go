package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vizerhq/jobboard/internal/core/domain"
)

type ApplicationRepository struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	query := `INSERT INTO applications
			(job_id, full_name, email, phone, linkedin, github, portfolio, cover_letter, resume_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		app.JobID, app.FullName, app.Email, app.Phone, app.LinkedIn,
		app.GitHub, app.Portfolio, app.CoverLetter, app.ResumeURL, app.CreatedAt,
	).Scan(&app.ID)
	if err != nil {
		if isUniqueViolation(err, "applications_job_email_idx") {
			return nil, domain.ErrDuplicateApplication
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	return app, nil
}

func (r *ApplicationRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Application, error) {
	query := `SELECT id, job_id, full_name, email, phone, linkedin, github,
			portfolio, cover_letter, resume_url, created_at
		FROM applications
		ORDER BY id DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var apps []*domain.Application
	for rows.Next() {
		var a domain.Application
		err := rows.Scan(&a.ID, &a.JobID, &a.FullName, &a.Email, &a.Phone,
			&a.LinkedIn, &a.GitHub, &a.Portfolio, &a.CoverLetter, &a.ResumeURL, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, &a)
	}
	return apps, rows.Err()
}
