package validator

import "errors"

// ErrValidationFailed is the sentinel matched by ValidationErrors.Is.
var ErrValidationFailed = errors.New("validation failed")
