package ports

import (
	"context"

	"github.com/vizerhq/jobboard/internal/core/domain"
)

// ApplyInput carries a candidate's submission for a job.
type ApplyInput struct {
	JobID       int64
	FullName    string
	Email       string
	Phone       string
	LinkedIn    string
	GitHub      string
	Portfolio   string
	CoverLetter string
	ResumeURL   string
}

// ApplicationService defines use-case operations for applications.
type ApplicationService interface {
	Apply(ctx context.Context, input ApplyInput) (*domain.Application, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Application, error)
}
