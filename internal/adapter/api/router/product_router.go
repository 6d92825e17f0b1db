package router

import (
	"heritageloom/internal/adapter/api/handler"
	"heritageloom/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)

	manage := e.Group("/v1/products")
	manage.Use(sessionMiddleware.Authenticate)
	manage.POST("", productHandler.CreateProduct)
	manage.POST("/:id", productHandler.UpdateProduct)
	manage.DELETE("/:id", productHandler.DeleteProduct)
}
