package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vizerhq/jobboard/internal/api/metrics"
	"github.com/vizerhq/jobboard/internal/core/domain"
	"github.com/vizerhq/jobboard/internal/core/ports"
)

// ApplicationHandler handles job application submissions and listing.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Apply handles POST /v1/jobs/:id/applications.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Job id"
// @Param        body  body      applyRequest  true  "Application details"
// @Success      201   {object}  domain.Application
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/jobs/{id}/applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid job id")
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.Apply(c.Request().Context(), ports.ApplyInput{
		JobID:       jobID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		LinkedIn:    req.LinkedIn,
		GitHub:      req.GitHub,
		Portfolio:   req.Portfolio,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			metrics.ApplicationsSubmittedTotal.WithLabelValues("duplicate").Inc()
		}
		return err
	}

	metrics.ApplicationsSubmittedTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, app)
}

// List handles GET /v1/applications — recent submissions, newest first.
//
// @Summary      List recent applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query    int  false  "Maximum rows (default and cap 50)"
// @Success      200    {array}  applicationSummary
// @Failure      401    {object} errorResponse
// @Router       /v1/applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	apps, err := h.service.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationSummaries(apps))
}
