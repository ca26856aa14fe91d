package ports

import (
	"context"

	"github.com/vizerhq/jobboard/internal/core/domain"
)

// JobRepository defines persistence operations for jobs.
type JobRepository interface {
	// List returns the newest jobs with their company embedded, capped at limit.
	List(ctx context.Context, limit int) ([]*domain.Job, error)
	FindByID(ctx context.Context, id int64) (*domain.Job, error)
	// CreateWithCompany resolves-or-creates the named company and inserts the
	// job in a single transaction. A duplicate job URL rolls the whole
	// transaction back and returns domain.ErrDuplicateJobURL — including any
	// company row created inside it.
	CreateWithCompany(ctx context.Context, companyName string, ownerID int64, job *domain.Job) (*domain.Job, error)
}
