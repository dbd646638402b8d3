package validation

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct-tag validation on req.
func Validate(req any) error {
	if err := validate.Struct(req); err != nil {
		return ErrValidationFailed
	}

	return nil
}
