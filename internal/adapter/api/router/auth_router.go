package router

import (
	"heritageloom/internal/adapter/api/handler"
	"heritageloom/internal/adapter/api/middleware"
	"heritageloom/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

func SetupAuthRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware, loginLimiter *ratelimit.Limiter) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/login", authHandler.Login, middleware.LoginRateLimit(loginLimiter))
	auth.POST("/logout", authHandler.Logout, sessionMiddleware.Authenticate)
}
