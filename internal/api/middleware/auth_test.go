package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vizerhq/jobboard/internal/api/middleware"
	"github.com/vizerhq/jobboard/internal/core/domain"
	"github.com/vizerhq/jobboard/internal/core/ports"
)

type stubAuth struct {
	token string
	user  *domain.PublicUser
}

func (a *stubAuth) CheckIdentifier(context.Context, string) (*ports.IdentifierCheck, error) {
	return nil, errors.New("not implemented")
}

func (a *stubAuth) Register(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
	return nil, errors.New("not implemented")
}

func (a *stubAuth) Login(context.Context, string, string) (*ports.AuthResult, error) {
	return nil, errors.New("not implemented")
}

func (a *stubAuth) ResolveSession(_ context.Context, token string) (*domain.PublicUser, error) {
	if token != a.token {
		return nil, domain.ErrInvalidCredentials
	}
	return a.user, nil
}

func (a *stubAuth) Logout(context.Context, string) error { return nil }

func invoke(t *testing.T, req *http.Request) (echo.Context, error) {
	t.Helper()
	auth := &stubAuth{token: "good", user: &domain.PublicUser{ID: 3, Email: "a@b.test"}}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return nil }
	err := middleware.Session(auth)(next)(c)
	return c, err
}

func TestSession_CookieAccepted(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "good"})

	c, err := invoke(t, req)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	user, ok := c.Get("user").(*domain.PublicUser)
	if !ok || user.ID != 3 {
		t.Fatalf("expected resolved user in context, got %#v", c.Get("user"))
	}
	if token, _ := c.Get("session_token").(string); token != "good" {
		t.Fatalf("expected raw token in context, got %q", token)
	}
}

func TestSession_BearerHeaderFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")

	if _, err := invoke(t, req); err != nil {
		t.Fatalf("expected bearer header to be accepted, got %v", err)
	}
}

func TestSession_CookieWinsOverHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "good"})
	req.Header.Set("Authorization", "Bearer stale")

	if _, err := invoke(t, req); err != nil {
		t.Fatalf("expected cookie token to take precedence, got %v", err)
	}
}

func TestSession_MissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := invoke(t, req)
	assertUnauthorized(t, err)
}

func TestSession_InvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "bad"})

	_, err := invoke(t, req)
	assertUnauthorized(t, err)
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}
