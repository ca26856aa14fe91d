package ports

import (
	"context"

	"github.com/vizerhq/jobboard/internal/core/domain"
)

// CompanyRepository defines persistence operations for companies.
type CompanyRepository interface {
	// List returns all companies ordered by name.
	List(ctx context.Context) ([]*domain.Company, error)
	// FindOrCreate inserts the company unless one with the same name (case-
	// insensitive) exists, in which case the existing row is returned. The
	// second return value reports whether a new row was created.
	FindOrCreate(ctx context.Context, company *domain.Company) (*domain.Company, bool, error)
}
