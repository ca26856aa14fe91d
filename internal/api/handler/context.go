package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vizerhq/jobboard/internal/core/domain"
)

// currentUser extracts the account injected by the Session middleware and
// fast-fails before any service call: its presence proves the middleware ran.
func currentUser(c echo.Context) (*domain.PublicUser, error) {
	user, _ := c.Get("user").(*domain.PublicUser)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated user")
	}
	return user, nil
}
