// Package validation binds request data and validates it.
//
// Request types declare rules with `validate` struct tags and run them
// through the shared validator in their Validate method. Every failure
// becomes the generic 400 validation error; the detail is only logged.
package validation

import (
	"errors"

	"github.com/deppfellow/pizzeria/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
type Validatable interface {
	Validate() error
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs the tag rules of v.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds the request into payload, which must be a pointer,
// and validates it.
//
// Malformed bodies, type mismatches and failed rules all return a 400
// *errs.HTTPError. A Validate method that already returns an
// *errs.HTTPError (a 404 for an unknown path id, say) is passed through.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewValidationError(err)
	}

	if err := payload.Validate(); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return errs.NewValidationError(err)
	}

	return nil
}
