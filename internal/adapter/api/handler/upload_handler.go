package handler

import (
	"io"
	"net/http"

	"heritageloom/internal/rest"
	"heritageloom/pkg/errors"
	"heritageloom/pkg/response"

	"github.com/labstack/echo/v4"
)

// UploadHandler proxies the rich-text editor's image uploads to the
// backend's upload side-channel, echoing the {url} contract the editor's
// upload adapter expects.
type UploadHandler struct {
	uploader *rest.Uploader
}

func NewUploadHandler(uploader *rest.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

func (h *UploadHandler) UploadEditorImage(c echo.Context) error {
	header, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.Validation("image", "is required"))
	}
	src, err := header.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("unreadable image", err))
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return response.Error(c, errors.BadRequest("unreadable image", err))
	}

	url, err := h.uploader.UploadImage(c.Request().Context(), header.Filename, data)
	if err != nil {
		return response.Error(c, err)
	}
	// bare {url}, not the standard envelope: the editor adapter reads it as-is
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
