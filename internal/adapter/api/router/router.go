package router

import (
	"heritageloom/internal/adapter/api/handler"
	"heritageloom/internal/adapter/api/middleware"
	"heritageloom/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware, loginLimiter *ratelimit.Limiter) {
	SetupAuthRouter(e, sessionMiddleware, loginLimiter)
	SetupProductRouter(e, sessionMiddleware)
	SetupBlogRouter(e, sessionMiddleware)
	SetupServiceRouter(e, sessionMiddleware)
	SetupPublicRouter(e, sessionMiddleware)

	e.GET("/health", handler.HealthCheck)
}
