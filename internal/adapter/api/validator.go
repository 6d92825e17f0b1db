package api

import (
	"heritageloom/internal/validation"

	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	v *validation.Validator
}

// NewValidator adapts the shared validator for echo's c.Validate.
func NewValidator(v *validation.Validator) echo.Validator {
	return &requestValidator{v: v}
}

func (rv *requestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}
