package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vizerhq/jobboard/internal/core/ports"
)

// CompanyHandler handles HTTP requests for companies.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// List handles GET /v1/companies — all companies, name-sorted.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Success      200  {array}  companyResponse
// @Router       /v1/companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.service.ListCompanies(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]companyResponse, 0, len(companies))
	for _, company := range companies {
		out = append(out, companyResponse{ID: company.ID, Name: company.Name})
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /v1/companies. Submitting an existing name returns the
// existing company with 200 instead of a conflict.
//
// @Summary      Register a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCompanyRequest  true  "Company details"
// @Success      201   {object}  domain.Company
// @Success      200   {object}  domain.Company
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, created, err := h.service.CreateCompany(c.Request().Context(), ports.CreateCompanyInput{
		Name:    req.Name,
		Address: req.Address,
		Logo:    req.Logo,
		OwnerID: user.ID,
	})
	if err != nil {
		return err
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, company)
}
