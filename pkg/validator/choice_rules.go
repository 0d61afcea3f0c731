package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf validates that value is one of options.
func OneOf[T comparable](field string, value T, options []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(options, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", options),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": options,
			},
		},
	}
}

// OneOfFold is OneOf for strings, ignoring case.
func OneOfFold(field, value string, options []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.ContainsFunc(options, func(o string) bool {
				return strings.EqualFold(o, value)
			})
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": options,
			},
		},
	}
}
