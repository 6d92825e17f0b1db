package router

import (
	"heritageloom/internal/adapter/api/handler"
	"heritageloom/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupBlogRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	blogHandler := handler.GetBlogHandler()

	blogs := e.Group("/v1/blogs")
	blogs.GET("", blogHandler.ListBlogs)
	blogs.GET("/:id", blogHandler.GetBlog)

	manage := e.Group("/v1/blogs")
	manage.Use(sessionMiddleware.Authenticate)
	manage.POST("", blogHandler.CreateBlog)
	manage.POST("/:id", blogHandler.UpdateBlog)
	manage.POST("/:id/publish", blogHandler.PublishBlog)
	manage.POST("/:id/unpublish", blogHandler.UnpublishBlog)
	manage.DELETE("/:id", blogHandler.DeleteBlog)
}
