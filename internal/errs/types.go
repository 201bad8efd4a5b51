package errs

import (
	"net/http"
)

// NewNotFoundError creates a 404 HTTPError rendered as {"error": message}.
//
// code defaults to "NOT_FOUND" when nil.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewValidationError creates a 400 HTTPError rendered as
// {"errors": ["validation errors"]}. cause is kept for logging only.
func NewValidationError(cause error) *HTTPError {
	return &HTTPError{
		Code:    "VALIDATION_FAILED",
		Message: ValidationMessage,
		Status:  http.StatusBadRequest,
		Errors:  []string{ValidationMessage},
		cause:   cause,
	}
}

func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// Wrap attaches cause to a copy of e, for logging.
func Wrap(e *HTTPError, cause error) *HTTPError {
	wrapped := *e
	wrapped.cause = cause
	return &wrapped
}
