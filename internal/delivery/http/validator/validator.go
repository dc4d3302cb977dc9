// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound inputs.
package validator

import (
	domainerrors "whisper/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a single validator instance shared by all requests.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the echo server.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the standard
// validation error so the error middleware renders them as 400s.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
