package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vizerhq/jobboard/internal/core/ports"
)

// ProfileHandler handles profile reads and updates for the authenticated
// account.
type ProfileHandler struct {
	service ports.UserService
}

func NewProfileHandler(service ports.UserService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /v1/me/profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ProfileView
// @Failure      401  {object}  errorResponse
// @Router       /v1/me/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.service.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Update handles PUT /v1/me/profile — partial update, omitted fields keep
// their stored values.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile fields"
// @Success      200   {object}  domain.PublicUser
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/me/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.UpdateProfile(c.Request().Context(), user.ID, ports.ProfileUpdate{
		FullName:   req.Name,
		Age:        req.Age,
		Location:   req.Location,
		Gender:     req.Gender,
		Skills:     req.Skills,
		Education:  req.Education,
		Experience: req.Experience,
		Interests:  req.Interests,
		Bio:        req.Bio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
