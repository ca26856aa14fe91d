package ports

import (
	"context"

	"github.com/vizerhq/jobboard/internal/core/domain"
)

// CreateCompanyInput carries the fields for a direct company registration.
type CreateCompanyInput struct {
	Name    string
	Address string
	Logo    string
	OwnerID int64
}

// CompanyService defines use-case operations for companies.
type CompanyService interface {
	ListCompanies(ctx context.Context) ([]*domain.Company, error)
	// CreateCompany upserts by name; the bool reports whether a row was created.
	CreateCompany(ctx context.Context, input CreateCompanyInput) (*domain.Company, bool, error)
}
