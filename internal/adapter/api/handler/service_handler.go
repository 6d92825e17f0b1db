package handler

import (
	"heritageloom/internal/catalog"
	"heritageloom/internal/usecase"
	"heritageloom/pkg/response"

	"github.com/labstack/echo/v4"
)

type ServiceHandler struct {
	content *usecase.ContentUseCase
}

func NewServiceHandler(content *usecase.ContentUseCase) *ServiceHandler {
	return &ServiceHandler{content: content}
}

func (h *ServiceHandler) ListServices(c echo.Context) error {
	services, err := h.content.ListServices(c.Request().Context(), c.QueryParam("type"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, services)
}

func (h *ServiceHandler) CreateService(c echo.Context) error {
	var form catalog.ServiceForm
	files, err := bindForm(c, &form)
	if err != nil {
		return response.Error(c, err)
	}
	service, err := h.content.CreateService(c.Request().Context(), form, files)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, service)
}

func (h *ServiceHandler) UpdateService(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return response.Error(c, err)
	}
	var form catalog.ServiceForm
	files, err := bindForm(c, &form)
	if err != nil {
		return response.Error(c, err)
	}
	service, err := h.content.UpdateService(c.Request().Context(), id, form, files)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, service)
}

func (h *ServiceHandler) DeleteService(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return response.Error(c, err)
	}
	if err := h.content.DeleteService(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}
