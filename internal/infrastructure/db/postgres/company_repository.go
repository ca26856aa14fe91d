package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vizerhq/jobboard/internal/core/domain"
)

type CompanyRepository struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	query := `SELECT id, name, address, logo, owner_id, created_at
		FROM companies
		ORDER BY lower(name)`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var companies []*domain.Company
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Logo, &c.OwnerID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, &c)
	}
	return companies, rows.Err()
}

// FindOrCreate attempts the insert first and falls back to a lookup when the
// name index trips, so concurrent creates with the same name converge on one
// row instead of racing a lookup-then-insert.
func (r *CompanyRepository) FindOrCreate(ctx context.Context, company *domain.Company) (*domain.Company, bool, error) {
	insert := `INSERT INTO companies (name, address, logo, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ((lower(name))) DO NOTHING
		RETURNING id`

	err := r.db.QueryRow(ctx, insert,
		company.Name, company.Address, company.Logo, company.OwnerID, company.CreatedAt,
	).Scan(&company.ID)
	if err == nil {
		return company, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("insert company: %w", err)
	}

	existing, err := r.findByName(ctx, company.Name)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *CompanyRepository) findByName(ctx context.Context, name string) (*domain.Company, error) {
	query := `SELECT id, name, address, logo, owner_id, created_at
		FROM companies
		WHERE lower(name) = lower($1)`

	var c domain.Company
	err := r.db.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name, &c.Address, &c.Logo, &c.OwnerID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return &c, nil
}
