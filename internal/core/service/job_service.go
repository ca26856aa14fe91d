package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vizerhq/jobboard/internal/core/domain"
	"github.com/vizerhq/jobboard/internal/core/ports"
)

const defaultJobListLimit = 50

type JobService struct {
	repo ports.JobRepository
	log  zerolog.Logger
}

func NewJobService(repo ports.JobRepository, log zerolog.Logger) *JobService {
	return &JobService{repo: repo, log: log}
}

func (s *JobService) ListJobs(ctx context.Context, limit int) ([]*domain.Job, error) {
	if limit <= 0 || limit > defaultJobListLimit {
		limit = defaultJobListLimit
	}
	return s.repo.List(ctx, limit)
}

func (s *JobService) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateJob resolves the company by name — creating it under the acting
// account when absent — and inserts the job, all in one transaction. A
// duplicate URL aborts both writes.
func (s *JobService) CreateJob(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	companyName := strings.TrimSpace(input.CompanyName)
	if companyName == "" || strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.URL) == "" {
		return nil, domain.ErrMissingFields
	}

	job := &domain.Job{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Location:    input.Location,
		Salary:      input.Salary,
		URL:         strings.TrimSpace(input.URL),
		PostedAt:    time.Now().UTC(),
		ExpiresAt:   input.ExpiresAt,
	}

	created, err := s.repo.CreateWithCompany(ctx, companyName, input.OwnerID, job)
	if err != nil {
		s.log.Error().Err(err).Str("company", companyName).Msg("failed to create job")
		return nil, err
	}

	s.log.Info().
		Int64("job_id", created.ID).
		Int64("company_id", created.CompanyID).
		Int64("owner_id", input.OwnerID).
		Msg("job created")

	return created, nil
}
