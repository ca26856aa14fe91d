package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vizerhq/jobboard/internal/core/domain"
	"github.com/vizerhq/jobboard/internal/core/ports"
)

const defaultApplicationListLimit = 50

type ApplicationService struct {
	repo    ports.ApplicationRepository
	jobRepo ports.JobRepository
	log     zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, jobRepo ports.JobRepository, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, jobRepo: jobRepo, log: log}
}

// Apply submits an application for a job. The (job, email) pair is unique —
// a repeat submission with the same email surfaces as a conflict, while a
// different email for the same job goes through.
func (s *ApplicationService) Apply(ctx context.Context, input ports.ApplyInput) (*domain.Application, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	if fullName == "" || email == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.jobRepo.FindByID(ctx, input.JobID); err != nil {
		return nil, err
	}

	app, err := s.repo.Create(ctx, &domain.Application{
		JobID:       input.JobID,
		FullName:    fullName,
		Email:       email,
		Phone:       input.Phone,
		LinkedIn:    input.LinkedIn,
		GitHub:      input.GitHub,
		Portfolio:   input.Portfolio,
		CoverLetter: input.CoverLetter,
		ResumeURL:   input.ResumeURL,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("application_id", app.ID).Int64("job_id", app.JobID).Msg("application submitted")
	return app, nil
}

func (s *ApplicationService) ListRecent(ctx context.Context, limit int) ([]*domain.Application, error) {
	if limit <= 0 || limit > defaultApplicationListLimit {
		limit = defaultApplicationListLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
