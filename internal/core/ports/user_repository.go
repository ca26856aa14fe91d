package ports

import (
	"context"

	"github.com/vizerhq/jobboard/internal/core/domain"
)

// ProfileUpdate carries a partial profile mutation. Nil fields are left
// untouched.
type ProfileUpdate struct {
	FullName   *string
	Age        *string
	Location   *string
	Gender     *string
	Skills     *string
	Education  *string
	Experience *string
	Interests  *string
	Bio        *string
}

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// FindByIdentifier matches the trimmed identifier against email OR
	// username, case-insensitively. Returns domain.ErrUserNotFound on no match.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Create persists a new account. A unique-constraint violation on email or
	// username is returned as domain.ErrIdentifierTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (*domain.User, error)
}
