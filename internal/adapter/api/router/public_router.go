package router

import (
	"heritageloom/internal/adapter/api/handler"
	"heritageloom/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPublicRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	e.POST("/v1/inquiries", handler.GetInquiryHandler().SubmitInquiry)

	uploads := e.Group("/v1/uploads")
	uploads.Use(sessionMiddleware.Authenticate)
	uploads.POST("/editor-image", handler.GetUploadHandler().UploadEditorImage)
}
