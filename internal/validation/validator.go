package validation

import (
	"reflect"
	"strings"

	"heritageloom/pkg/errors"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// report wire field names (schema tag), not Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("schema"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return &Validator{v: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

// First translates a validator error into the client taxonomy, naming the
// first failing field. A nil error passes through as nil.
func (v *Validator) First(err error) error {
	if err == nil {
		return nil
	}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return errors.BadRequest("invalid input", err)
	}
	first := validationErrs[0]
	switch first.Tag() {
	case "required":
		return errors.Validation(first.Field(), "is required")
	case "oneof":
		return errors.Validation(first.Field(), "must be one of: "+first.Param())
	case "email":
		return errors.Validation(first.Field(), "must be a valid email address")
	default:
		return errors.Validation(first.Field(), "is invalid")
	}
}
