package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// Validation reports a client-side precondition failure caught before any
// network call. Field names the first offending field.
func Validation(field string, message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: fmt.Sprintf("%s: %s", field, message),
		Status:  http.StatusBadRequest,
	}
}

// Transport wraps an HTTP-level failure. Status is 0 when the request never
// reached the server (refused connection, DNS failure, timeout).
func Transport(status int, rawBody string, err error) *AppError {
	msg := rawBody
	if msg == "" && err != nil {
		msg = err.Error()
	}
	return &AppError{
		Code:    "TRANSPORT_ERROR",
		Message: msg,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func Decode(message string, err error) *AppError {
	return &AppError{
		Code:    "DECODE_ERROR",
		Message: message,
		Status:  http.StatusUnprocessableEntity,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func TooManyRequests(message string) *AppError {
	return &AppError{
		Code:    "TOO_MANY_REQUESTS",
		Message: message,
		Status:  http.StatusTooManyRequests,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// FieldOf extracts the field name from a validation error, or "" for any
// other kind of error.
func FieldOf(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		return ""
	}
	if i := strings.IndexByte(appErr.Message, ':'); i >= 0 {
		return appErr.Message[:i]
	}
	return appErr.Message
}
