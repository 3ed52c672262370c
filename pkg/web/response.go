// Package web defines common components for a web application.
package web

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns the human readable suffix describing the failed validation rule.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must be less than " + fe.Param()
	case "currency":
		return " is not supported"
	}

	return " is invalid"
}

// BindingErrorMsg converts a request binding error into a response message.
//
// Validation errors are reported for the first failing field, anything else
// (malformed JSON, wrong types) is reported as is.
func BindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		field := ve[0]
		return field.Field() + GetErrorMsg(field)
	}

	return err.Error()
}

// StatusCode maps an error kind to the HTTP status code returned to the client.
func StatusCode(err error) int {
	switch errorspkg.KindOf(err) {
	case errorspkg.ErrValidation,
		errorspkg.ErrAlreadyExists,
		errorspkg.ErrInsufficientFunds:
		return http.StatusBadRequest
	case errorspkg.ErrNotFound:
		return http.StatusNotFound
	case errorspkg.ErrUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse returns the status code and body describing err.
//
// Errors without a known kind are hidden behind errorspkg.ErrInternal.
func ErrorResponse(err error) (int, Response) {
	code := StatusCode(err)
	if code == http.StatusInternalServerError {
		return code, Error(errorspkg.ErrInternal)
	}

	return code, Error(err)
}
