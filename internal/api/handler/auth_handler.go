package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vizerhq/jobboard/internal/api/metrics"
	"github.com/vizerhq/jobboard/internal/api/middleware"
	"github.com/vizerhq/jobboard/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CheckIdentifier reports whether an email or username is already registered.
//
// @Summary      Check whether an identifier exists
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      checkIdentifierRequest  true  "Identifier to check"
// @Success      200   {object}  checkIdentifierResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/check-identifier [post]
func (h *AuthHandler) CheckIdentifier(c echo.Context) error {
	var req checkIdentifierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	check, err := h.authService.CheckIdentifier(c.Request().Context(), req.Identifier)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, checkIdentifierResponse{Exists: check.Exists, Type: check.Type})
}

// Register creates an account and signs the caller in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	c.SetCookie(sessionCookie(result.Token, result.ExpiresAt))

	return c.JSON(http.StatusCreated, authResponse{
		Message: "account created",
		Token:   result.Token,
		User:    result.User,
	})
}

// Login authenticates an identifier/password pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(sessionCookie(result.Token, result.ExpiresAt))

	return c.JSON(http.StatusOK, authResponse{
		Message: "login successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// Logout revokes the presented session token and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get("session_token").(string)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	c.SetCookie(expiredSessionCookie())
	return c.NoContent(http.StatusNoContent)
}

// sessionCookie builds the HTTP-only cookie mirroring the token in the JSON
// body: same token, same expiry.
func sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
