package validation

import "errors"

var ErrValidationFailed = errors.New("validation failed")
