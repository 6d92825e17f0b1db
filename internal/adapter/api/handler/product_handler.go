package handler

import (
	"heritageloom/internal/catalog"
	"heritageloom/internal/usecase"
	"heritageloom/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	content *usecase.ContentUseCase
}

func NewProductHandler(content *usecase.ContentUseCase) *ProductHandler {
	return &ProductHandler{content: content}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.content.ListProducts(c.Request().Context(), c.QueryParam("type"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return response.Error(c, err)
	}
	product, err := h.content.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	form := catalog.NewProductForm()
	images, err := bindForm(c, &form)
	if err != nil {
		return response.Error(c, err)
	}
	product, err := h.content.CreateProduct(c.Request().Context(), form, images)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return response.Error(c, err)
	}
	var form catalog.ProductForm
	images, err := bindForm(c, &form)
	if err != nil {
		return response.Error(c, err)
	}
	product, err := h.content.UpdateProduct(c.Request().Context(), id, form, images)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return response.Error(c, err)
	}
	if err := h.content.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}
