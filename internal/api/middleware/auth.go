package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vizerhq/jobboard/internal/api/metrics"
	"github.com/vizerhq/jobboard/internal/core/ports"
)

// SessionCookieName is the cookie carrying the signed session token. The same
// token is also accepted as an Authorization bearer header for clients that
// store it themselves.
const SessionCookieName = "token"

// Session resolves the bearer token on every protected request and injects
// the resulting account into the echo context under "user". Any resolution
// failure — missing, malformed, expired, revoked — yields 401 without detail.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				metrics.SessionsResolvedTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			user, err := auth.ResolveSession(c.Request().Context(), token)
			if err != nil {
				metrics.SessionsResolvedTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			metrics.SessionsResolvedTotal.WithLabelValues("ok").Inc()
			c.Set("user", user)
			c.Set("session_token", token)

			return next(c)
		}
	}
}

// TokenFromRequest extracts the session token, preferring the cookie and
// falling back to an Authorization bearer header. Returns "" when neither is
// present.
func TokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
