package errs

import "strings"

// ValidationMessage is the only message ever rendered for a failed validation.
// Clients never receive field-level detail; the underlying cause is logged.
const ValidationMessage = "validation errors"

// HTTPError is the error type every handler failure is converted into.
type HTTPError struct {
	// Code is a machine readable identifier (e.g. "RESTAURANT_NOT_FOUND").
	// It is logged, not rendered.
	Code string

	// Message is rendered as {"error": Message} when Errors is empty.
	Message string

	// Status is the HTTP status code to respond with.
	Status int

	// Errors, when set, is rendered as {"errors": Errors}.
	Errors []string

	cause error
}

func (e *HTTPError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause so logs and errors.Is/As can see it.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// Body is the JSON payload written to the client.
func (e *HTTPError) Body() map[string]any {
	if len(e.Errors) > 0 {
		return map[string]any{"errors": e.Errors}
	}
	return map[string]any{"error": e.Message}
}

// MakeUpperCaseWithUnderscores turns "Not Found" into "NOT_FOUND".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
