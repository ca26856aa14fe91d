package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vizerhq/jobboard/internal/core/domain"
	"github.com/vizerhq/jobboard/internal/core/ports"
)

type CompanyService struct {
	repo ports.CompanyRepository
	log  zerolog.Logger
}

func NewCompanyService(repo ports.CompanyRepository, log zerolog.Logger) *CompanyService {
	return &CompanyService{repo: repo, log: log}
}

func (s *CompanyService) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	return s.repo.List(ctx)
}

// CreateCompany registers a company directly. Names are deduplicated
// case-insensitively: submitting an existing name returns the existing row
// rather than a conflict.
func (s *CompanyService) CreateCompany(ctx context.Context, input ports.CreateCompanyInput) (*domain.Company, bool, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, false, domain.ErrMissingFields
	}

	company, created, err := s.repo.FindOrCreate(ctx, &domain.Company{
		Name:      name,
		Address:   input.Address,
		Logo:      input.Logo,
		OwnerID:   input.OwnerID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, false, err
	}

	if created {
		s.log.Info().Int64("company_id", company.ID).Str("name", company.Name).Msg("company created")
	}
	return company, created, nil
}
