package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var (
	// Phone characters accepted in free-form input
	phoneCharsRegex = regexp.MustCompile(`^[0-9 +\-()]+$`)

	// 6-digit hex color, optional leading '#'
	hexColorRegex = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)
)

// ValidEmail validates that a string is a valid email address using RFC 5322.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			// Parse with Go's mail parser first
			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			// Additional validation for typical web use
			email := addr.Address
			parts := strings.Split(email, "@")
			if len(parts) != 2 {
				return false
			}

			localPart := parts[0]
			domain := parts[1]

			// Local part cannot be empty
			if localPart == "" {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			// Domain parts cannot be empty
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidURL validates that a string is a valid URL.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}

			// Must have a scheme and host
			if u.Scheme == "" || u.Host == "" {
				return false
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidURLWithScheme validates that a string is a valid URL with a specific scheme.
func ValidURLWithScheme(field, value string, schemes []string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}
			return slices.Contains(schemes, u.Scheme)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid URL with scheme: %s", strings.Join(schemes, ", ")),
			TranslationKey: "validation.url_scheme",
			TranslationValues: map[string]any{
				"field":   field,
				"schemes": schemes,
			},
		},
	}
}

// ValidPhoneChars validates that a phone number uses only digits, spaces,
// plus signs, dashes and parentheses, and contains at least one digit.
func ValidPhoneChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			value = strings.TrimSpace(value)
			return phoneCharsRegex.MatchString(value) && strings.ContainsAny(value, "0123456789")
		},
		Error: ValidationError{
			Field:          field,
			Message:        "may contain only digits, spaces, +, - and parentheses",
			TranslationKey: "validation.phone_chars",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidHexColor validates a 6-digit hex color with an optional leading '#'.
func ValidHexColor(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return hexColorRegex.MatchString(strings.TrimSpace(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a 6-digit hex color",
			TranslationKey: "validation.hex_color",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
