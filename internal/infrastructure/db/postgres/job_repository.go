package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vizerhq/jobboard/internal/core/domain"
)

const jobSelect = `SELECT j.id, j.company_id, j.title, j.description, j.location,
		j.salary, j.url, j.posted_at, j.expires_at,
		c.name, c.address, c.logo, c.owner_id, c.created_at
	FROM jobs j
	JOIN companies c ON c.id = j.company_id`

type JobRepository struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) List(ctx context.Context, limit int) ([]*domain.Job, error) {
	rows, err := r.db.Query(ctx, jobSelect+` ORDER BY j.id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *JobRepository) FindByID(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// CreateWithCompany runs the company upsert and the job insert in one
// transaction. The ON CONFLICT no-op update makes the upsert return the
// existing row's id, so there is no lookup-then-insert window; a duplicate
// job URL rolls back the company row along with the job.
func (r *JobRepository) CreateWithCompany(ctx context.Context, companyName string, ownerID int64, job *domain.Job) (*domain.Job, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	upsert := `INSERT INTO companies (name, owner_id)
		VALUES ($1, $2)
		ON CONFLICT ((lower(name))) DO UPDATE SET name = companies.name
		RETURNING id, name, address, logo, owner_id, created_at`

	var company domain.Company
	err = tx.QueryRow(ctx, upsert, companyName, ownerID).Scan(
		&company.ID, &company.Name, &company.Address, &company.Logo, &company.OwnerID, &company.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert company: %w", err)
	}

	insert := `INSERT INTO jobs (company_id, title, description, location, salary, url, posted_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err = tx.QueryRow(ctx, insert,
		company.ID, job.Title, job.Description, job.Location, job.Salary,
		job.URL, job.PostedAt, job.ExpiresAt,
	).Scan(&job.ID)
	if err != nil {
		if isUniqueViolation(err, "jobs_url_idx") {
			return nil, domain.ErrDuplicateJobURL
		}
		return nil, fmt.Errorf("insert job: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	job.CompanyID = company.ID
	job.Company = &company
	return job, nil
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var (
		j domain.Job
		c domain.Company
	)
	err := row.Scan(
		&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Location,
		&j.Salary, &j.URL, &j.PostedAt, &j.ExpiresAt,
		&c.Name, &c.Address, &c.Logo, &c.OwnerID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan job: %w", err)
	}
	c.ID = j.CompanyID
	j.Company = &c
	return &j, nil
}
