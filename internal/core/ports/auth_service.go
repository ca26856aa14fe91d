package ports

import (
	"context"
	"time"

	"github.com/vizerhq/jobboard/internal/core/domain"
)

// IdentifierCheck reports whether an identifier is taken and how it was
// classified. Type is advisory ("email" when the identifier contains '@',
// otherwise "username") and plays no part in the lookup itself.
type IdentifierCheck struct {
	Exists bool
	Type   string
}

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Email    string
	Username string
	FullName string
	Password string
}

// AuthResult is returned on successful login or registration. Token and
// ExpiresAt feed both delivery paths (JSON body and session cookie), which
// must stay in sync.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.PublicUser
}

// AuthService defines the identifier-resolution, credential and session
// use cases.
type AuthService interface {
	CheckIdentifier(ctx context.Context, identifier string) (*IdentifierCheck, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, identifier, password string) (*AuthResult, error)
	// ResolveSession verifies a bearer token and re-fetches the account it
	// names. Any verification failure yields domain.ErrInvalidCredentials.
	ResolveSession(ctx context.Context, token string) (*domain.PublicUser, error)
	// Logout revokes the presented token for its remaining lifetime.
	Logout(ctx context.Context, token string) error
}
