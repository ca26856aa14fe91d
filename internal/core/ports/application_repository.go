package ports

import (
	"context"

	"github.com/vizerhq/jobboard/internal/core/domain"
)

// ApplicationRepository defines persistence operations for job applications.
type ApplicationRepository interface {
	// Create persists an application. A duplicate (job_id, email) pair is
	// returned as domain.ErrDuplicateApplication.
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	// ListRecent returns the newest applications, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*domain.Application, error)
}
