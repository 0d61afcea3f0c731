package handler

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/qrgen/pkg/validator"
)

// ValidationError maps field names to messages.
type ValidationError url.Values

// Error lists the first message of every field in field order.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if msgs := e[field]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msgs[0]))
		}
	}
	return "validation error: " + strings.Join(parts, ", ")
}

func NewValidationError() ValidationError {
	return make(ValidationError)
}

// FromValidator converts rule failures into a ValidationError.
func FromValidator(errs validator.ValidationErrors) ValidationError {
	out := NewValidationError()
	for _, err := range errs {
		out.Add(err.Field, err.Message)
	}
	return out
}

func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
