package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vizerhq/jobboard/internal/api"
	"github.com/vizerhq/jobboard/internal/api/handler"
	"github.com/vizerhq/jobboard/internal/api/middleware"
	"github.com/vizerhq/jobboard/internal/core/domain"
	"github.com/vizerhq/jobboard/internal/core/ports"
)

type memApplicationService struct {
	lastInput ports.ApplyInput
	applyErr  error
	apps      []*domain.Application
}

func (s *memApplicationService) Apply(_ context.Context, input ports.ApplyInput) (*domain.Application, error) {
	s.lastInput = input
	if s.applyErr != nil {
		return nil, s.applyErr
	}
	return &domain.Application{ID: 1, JobID: input.JobID, FullName: input.FullName, Email: input.Email}, nil
}

func (s *memApplicationService) ListRecent(_ context.Context, _ int) ([]*domain.Application, error) {
	return s.apps, nil
}

func newApplicationServer(svc *memApplicationService, auth *fixedAuth) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewApplicationHandler(svc)
	session := middleware.Session(auth)

	e.POST("/v1/jobs/:id/applications", h.Apply)
	e.GET("/v1/applications", h.List, session)
	return e
}

func TestApplicationApply_NoSessionRequired(t *testing.T) {
	svc := &memApplicationService{}
	e := newApplicationServer(svc, testAuth())

	rec := doJSON(e, http.MethodPost, "/v1/jobs/5/applications",
		`{"full_name":"Carol Candidate","email":"carol@example.com","resume_url":"https://cv.example.com/carol.pdf"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("apply returned %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastInput.JobID != 5 || svc.lastInput.Email != "carol@example.com" {
		t.Fatalf("input not carried through: %+v", svc.lastInput)
	}
}

func TestApplicationApply_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"duplicate", domain.ErrDuplicateApplication, http.StatusConflict},
		{"unknown job", domain.ErrJobNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newApplicationServer(&memApplicationService{applyErr: tc.err}, testAuth())

			rec := doJSON(e, http.MethodPost, "/v1/jobs/5/applications",
				`{"full_name":"Carol","email":"carol@example.com"}`)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d: %s", tc.code, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestApplicationApply_Validation(t *testing.T) {
	e := newApplicationServer(&memApplicationService{}, testAuth())

	rec := doJSON(e, http.MethodPost, "/v1/jobs/5/applications",
		`{"full_name":"Carol","email":"not-an-email"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/v1/jobs/abc/applications",
		`{"full_name":"Carol","email":"carol@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric job id, got %d", rec.Code)
	}
}

func TestApplicationList_RequiresSession(t *testing.T) {
	svc := &memApplicationService{apps: []*domain.Application{{ID: 1, JobID: 5, Email: "carol@example.com"}}}
	e := newApplicationServer(svc, testAuth())

	rec := doJSON(e, http.MethodGet, "/v1/applications", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/v1/applications", "",
		&http.Cookie{Name: middleware.SessionCookieName, Value: "valid-token"})
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d: %s", rec.Code, rec.Body.String())
	}
}
