package middleware

import (
	"net/http"
	"strings"

	"heritageloom/internal/session"

	"github.com/labstack/echo/v4"
)

type SessionMiddleware struct {
	manager *session.Manager
}

func NewSessionMiddleware(manager *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{manager: manager}
}

// Authenticate requires a valid bearer session token and stores the admin
// username under "username" for downstream handlers.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		username, err := m.manager.Verify(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("username", username)
		return next(c)
	}
}
