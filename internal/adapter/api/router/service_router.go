package router

import (
	"heritageloom/internal/adapter/api/handler"
	"heritageloom/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupServiceRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	serviceHandler := handler.GetServiceHandler()

	services := e.Group("/v1/services")
	services.GET("", serviceHandler.ListServices)

	manage := e.Group("/v1/services")
	manage.Use(sessionMiddleware.Authenticate)
	manage.POST("", serviceHandler.CreateService)
	manage.POST("/:id", serviceHandler.UpdateService)
	manage.DELETE("/:id", serviceHandler.DeleteService)
}
