package ports

import (
	"context"
	"time"

	"github.com/vizerhq/jobboard/internal/core/domain"
)

// CreateJobInput carries all data needed to post a job. CompanyName is
// resolved to an existing company (case-insensitive) or a new one owned by
// the acting account.
type CreateJobInput struct {
	CompanyName string
	Title       string
	Description string
	Location    string
	Salary      string
	URL         string
	ExpiresAt   *time.Time
	OwnerID     int64
}

// JobService defines use-case operations for job postings.
type JobService interface {
	ListJobs(ctx context.Context, limit int) ([]*domain.Job, error)
	GetJob(ctx context.Context, id int64) (*domain.Job, error)
	CreateJob(ctx context.Context, input CreateJobInput) (*domain.Job, error)
}
