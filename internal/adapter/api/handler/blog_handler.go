package handler

import (
	"strconv"

	"heritageloom/internal/catalog"
	"heritageloom/internal/usecase"
	"heritageloom/pkg/response"

	"github.com/labstack/echo/v4"
)

type BlogHandler struct {
	content *usecase.ContentUseCase
}

func NewBlogHandler(content *usecase.ContentUseCase) *BlogHandler {
	return &BlogHandler{content: content}
}

func (h *BlogHandler) ListBlogs(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	blogs, pageInfo, err := h.content.ListBlogs(c.Request().Context(), page)
	if err != nil {
		return response.Error(c, err)
	}
	if pageInfo == nil {
		return response.Success(c, blogs)
	}
	return response.Paginated(c, blogs, pageInfo.Page, pageInfo.TotalPages, pageInfo.TotalResults, pageInfo.PerPage)
}

func (h *BlogHandler) GetBlog(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return response.Error(c, err)
	}
	blog, err := h.content.GetBlog(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, blog)
}

func (h *BlogHandler) CreateBlog(c echo.Context) error {
	form := catalog.NewBlogForm()
	files, err := bindForm(c, &form)
	if err != nil {
		return response.Error(c, err)
	}
	blog, err := h.content.CreateBlog(c.Request().Context(), form, files)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, blog)
}

func (h *BlogHandler) UpdateBlog(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return response.Error(c, err)
	}
	var form catalog.BlogForm
	files, err := bindForm(c, &form)
	if err != nil {
		return response.Error(c, err)
	}
	blog, err := h.content.UpdateBlog(c.Request().Context(), id, form, files)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, blog)
}

func (h *BlogHandler) PublishBlog(c echo.Context) error {
	return h.setStatus(c, true)
}

func (h *BlogHandler) UnpublishBlog(c echo.Context) error {
	return h.setStatus(c, false)
}

func (h *BlogHandler) setStatus(c echo.Context, publish bool) error {
	id, err := paramID(c)
	if err != nil {
		return response.Error(c, err)
	}
	blog, err := h.content.SetBlogStatus(c.Request().Context(), id, publish)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, blog)
}

func (h *BlogHandler) DeleteBlog(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return response.Error(c, err)
	}
	if err := h.content.DeleteBlog(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}
