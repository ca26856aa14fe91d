package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vizerhq/jobboard/internal/api"
	"github.com/vizerhq/jobboard/internal/api/handler"
	"github.com/vizerhq/jobboard/internal/api/middleware"
	"github.com/vizerhq/jobboard/internal/core/domain"
	"github.com/vizerhq/jobboard/internal/core/ports"
)

// fixedAuth accepts a single token and resolves it to a single user.
type fixedAuth struct {
	token string
	user  *domain.PublicUser
}

func (a *fixedAuth) CheckIdentifier(context.Context, string) (*ports.IdentifierCheck, error) {
	return nil, domain.ErrMissingFields
}

func (a *fixedAuth) Register(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
	return nil, domain.ErrMissingFields
}

func (a *fixedAuth) Login(context.Context, string, string) (*ports.AuthResult, error) {
	return nil, domain.ErrInvalidCredentials
}

func (a *fixedAuth) ResolveSession(_ context.Context, token string) (*domain.PublicUser, error) {
	if token != a.token {
		return nil, domain.ErrInvalidCredentials
	}
	return a.user, nil
}

func (a *fixedAuth) Logout(context.Context, string) error { return nil }

// memJobService records the last CreateJob input and serves canned jobs.
type memJobService struct {
	jobs      map[int64]*domain.Job
	lastInput ports.CreateJobInput
	createErr error
}

func (s *memJobService) ListJobs(_ context.Context, _ int) ([]*domain.Job, error) {
	out := make([]*domain.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (s *memJobService) GetJob(_ context.Context, id int64) (*domain.Job, error) {
	if j, ok := s.jobs[id]; ok {
		return j, nil
	}
	return nil, domain.ErrJobNotFound
}

func (s *memJobService) CreateJob(_ context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	s.lastInput = input
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.Job{ID: 1, Title: input.Title, URL: input.URL}, nil
}

func newJobServer(svc *memJobService, auth *fixedAuth) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewJobHandler(svc)
	session := middleware.Session(auth)

	e.GET("/v1/jobs", h.List)
	e.GET("/v1/jobs/:id", h.Get)
	e.POST("/v1/jobs", h.Create, session)
	return e
}

func testAuth() *fixedAuth {
	return &fixedAuth{
		token: "valid-token",
		user:  &domain.PublicUser{ID: 7, Email: "bob@example.com", Username: "bob"},
	}
}

func TestJobCreate_RequiresSession(t *testing.T) {
	e := newJobServer(&memJobService{jobs: map[int64]*domain.Job{}}, testAuth())

	body := `{"company_name":"Acme","title":"Engineer","url":"https://jobs.acme.test/1"}`

	rec := doJSON(e, http.MethodPost, "/v1/jobs", body)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/v1/jobs", body,
		&http.Cookie{Name: middleware.SessionCookieName, Value: "garbage"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", rec.Code)
	}
}

func TestJobCreate_UsesSessionOwner(t *testing.T) {
	svc := &memJobService{jobs: map[int64]*domain.Job{}}
	e := newJobServer(svc, testAuth())

	rec := doJSON(e, http.MethodPost, "/v1/jobs",
		`{"company_name":"Acme","title":"Engineer","url":"https://jobs.acme.test/1","salary":"100k"}`,
		&http.Cookie{Name: middleware.SessionCookieName, Value: "valid-token"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", rec.Code, rec.Body.String())
	}

	if svc.lastInput.OwnerID != 7 {
		t.Fatalf("expected owner id from session, got %d", svc.lastInput.OwnerID)
	}
	if svc.lastInput.CompanyName != "Acme" || svc.lastInput.Salary != "100k" {
		t.Fatalf("input not carried through: %+v", svc.lastInput)
	}
}

func TestJobCreate_DuplicateURLConflict(t *testing.T) {
	svc := &memJobService{jobs: map[int64]*domain.Job{}, createErr: domain.ErrDuplicateJobURL}
	e := newJobServer(svc, testAuth())

	rec := doJSON(e, http.MethodPost, "/v1/jobs",
		`{"company_name":"Acme","title":"Engineer","url":"https://jobs.acme.test/1"}`,
		&http.Cookie{Name: middleware.SessionCookieName, Value: "valid-token"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "URL") {
		t.Fatalf("conflict message should name the URL field: %s", rec.Body.String())
	}
}

func TestJobCreate_InvalidURL(t *testing.T) {
	e := newJobServer(&memJobService{jobs: map[int64]*domain.Job{}}, testAuth())

	rec := doJSON(e, http.MethodPost, "/v1/jobs",
		`{"company_name":"Acme","title":"Engineer","url":"not a url"}`,
		&http.Cookie{Name: middleware.SessionCookieName, Value: "valid-token"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestJobGet_NotFound(t *testing.T) {
	e := newJobServer(&memJobService{jobs: map[int64]*domain.Job{}}, testAuth())

	rec := doJSON(e, http.MethodGet, "/v1/jobs/42", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/v1/jobs/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", rec.Code)
	}
}

func TestJobList_Public(t *testing.T) {
	svc := &memJobService{jobs: map[int64]*domain.Job{
		1: {ID: 1, Title: "Engineer", URL: "https://jobs.acme.test/1"},
	}}
	e := newJobServer(svc, testAuth())

	rec := doJSON(e, http.MethodGet, "/v1/jobs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}
	var jobs []*domain.Job
	if err := json.Unmarshal(rec.Body.Bytes(), &jobs); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "Engineer" {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}
}
