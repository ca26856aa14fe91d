package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vizerhq/jobboard/internal/core/domain"
	"github.com/vizerhq/jobboard/internal/core/ports"
)

// TokenRevoker abstracts the revocation denylist (Redis). Revoked token IDs
// stay listed until the token would have expired on its own.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// sessionClaims binds a token to an account. Only the account id is trusted
// on resolution; everything else is re-fetched from the store.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
}

// AuthService implements identifier resolution, registration, login and
// session resolution.
type AuthService struct {
	repo      ports.UserRepository
	revoker   TokenRevoker
	jwtSecret []byte
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, revoker TokenRevoker, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		revoker:   revoker,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// CheckIdentifier reports whether any account matches the identifier on email
// OR username, case-insensitively. The returned Type only classifies the
// string ("email" iff it contains '@'); it never reveals which field matched.
func (s *AuthService) CheckIdentifier(ctx context.Context, identifier string) (*ports.IdentifierCheck, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, domain.ErrMissingFields
	}

	kind := "username"
	if strings.Contains(identifier, "@") {
		kind = "email"
	}

	_, err := s.repo.FindByIdentifier(ctx, identifier)
	switch {
	case err == nil:
		return &ports.IdentifierCheck{Exists: true, Type: kind}, nil
	case errors.Is(err, domain.ErrUserNotFound):
		return &ports.IdentifierCheck{Exists: false, Type: kind}, nil
	default:
		return nil, err
	}
}

// Register creates an account and immediately issues a token, so registration
// doubles as login. Conflicts are reported generically: the caller never
// learns whether the email or the username collided.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	username := strings.TrimSpace(input.Username)
	fullName := strings.TrimSpace(input.FullName)
	if email == "" || username == "" || fullName == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}

	for _, identifier := range []string{email, username} {
		if _, err := s.repo.FindByIdentifier(ctx, identifier); err == nil {
			return nil, domain.ErrIdentifierTaken
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Username:     username,
		FullName:     fullName,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique indexes are the real backstop: two concurrent registrations
	// can both pass the existence check, and the loser surfaces here as the
	// same generic conflict.
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Msg("account registered")
	return s.issue(created)
}

// Login verifies the identifier/password pair. An unknown identifier and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*ports.AuthResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.log.Info().Int64("user_id", user.ID).Msg("login succeeded")
	return s.issue(user)
}

// ResolveSession verifies the token and re-fetches the account by the id it
// carries. Every failure collapses into ErrInvalidCredentials; callers decide
// the HTTP-level response.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domain.PublicUser, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if claims.ID != "" {
		revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			s.log.Warn().Err(err).Msg("revocation check failed, accepting token")
		} else if revoked {
			return nil, domain.ErrInvalidCredentials
		}
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	return user.Public(), nil
}

// Logout denylists the token's id for its remaining lifetime. Once the token
// would have expired anyway the entry is dropped.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return domain.ErrInvalidCredentials
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.revoker.Revoke(ctx, claims.ID, ttl)
}

// TokenTTL exposes the configured validity window so the HTTP layer can keep
// the cookie max-age in sync with the token expiry.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

func (s *AuthService) issue(user *domain.User) (*ports.AuthResult, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.tokenTTL)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: user.ID,
		Email:  user.Email,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{Token: token, ExpiresAt: expiresAt, User: user.Public()}, nil
}

func (s *AuthService) parse(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.UserID == 0 {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
