package payload

import (
	"github.com/dmitrymomot/qrgen/pkg/sanitizer"
	"github.com/dmitrymomot/qrgen/pkg/validator"
)

// Validate returns format warnings for the fields ct uses.
// Empty fields are not reported; emptiness is signalled by Encode.
func Validate(ct ContentType, f Fields) validator.ValidationErrors {
	var rules []validator.Rule

	if phone := sanitizer.Trim(f.Phone); phone != "" && usesPhone(ct) {
		rules = append(rules, validator.ValidPhoneChars("phone", phone))
	}
	if email := sanitizer.Trim(f.Email); email != "" && ct == VCard {
		rules = append(rules, validator.ValidEmail("email", email))
	}

	return validator.ExtractValidationErrors(validator.Apply(rules...))
}

func usesPhone(ct ContentType) bool {
	return ct == VCard || ct == WhatsApp || ct == SMS
}
