package handler

import (
	"heritageloom/internal/catalog"
	"heritageloom/internal/usecase"
	"heritageloom/pkg/response"

	"github.com/labstack/echo/v4"
)

// InquiryHandler takes the public sell/exchange form. It is the one
// unauthenticated write surface: visitors submit, nobody browses.
type InquiryHandler struct {
	content *usecase.ContentUseCase
}

func NewInquiryHandler(content *usecase.ContentUseCase) *InquiryHandler {
	return &InquiryHandler{content: content}
}

func (h *InquiryHandler) SubmitInquiry(c echo.Context) error {
	var form catalog.InquiryForm
	photos, err := bindForm(c, &form)
	if err != nil {
		return response.Error(c, err)
	}
	inquiry, err := h.content.SubmitInquiry(c.Request().Context(), form, photos)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, inquiry)
}
