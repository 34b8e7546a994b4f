package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies collaborator failures for the request boundary.
// The extraction core itself never produces errors.
type ErrorKind string

const (
	ValidationFailure ErrorKind = "VALIDATION_FAILURE"
	ConversionFailure ErrorKind = "CONVERSION_FAILURE"
	ProviderFailure   ErrorKind = "PROVIDER_FAILURE"
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: ValidationFailure, Message: message}
}

func NewConversionError(message string, cause error) *AppError {
	return &AppError{Kind: ConversionFailure, Message: message, Cause: cause}
}

func NewProviderError(message string, cause error) *AppError {
	return &AppError{Kind: ProviderFailure, Message: message, Cause: cause}
}

// KindOf reports the ErrorKind of err, unwrapping as needed.
// Unknown errors are reported as ProviderFailure.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ProviderFailure
}

// HTTPStatus maps an ErrorKind to the status code surfaced at the boundary.
// ValidationFailure is the caller's fault; everything else is ours.
func HTTPStatus(kind ErrorKind) int {
	if kind == ValidationFailure {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
