package middleware

import (
	"fmt"
	"net/http"
	"time"

	"heritageloom/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

// LoginRateLimit throttles credential attempts per client IP so a stolen
// admin password cannot be brute-forced through the gateway.
func LoginRateLimit(limiter *ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, wait := limiter.Allow(c.RealIP())
			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests,
					fmt.Sprintf("too many login attempts, retry in %s", wait.Round(time.Second)))
			}
			return next(c)
		}
	}
}
