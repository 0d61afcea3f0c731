// Package validator builds declarative validation rules.
//
// A Rule pairs a Check func with a ValidationError carrying a translation key.
// Apply evaluates rules and aggregates failures into ValidationErrors, which
// implements error and matches ErrValidationFailed via errors.Is. qrgen uses
// it for content-type field warnings (phone characters, email format) and for
// checking API query parameters:
//
//	err := validator.Apply(
//	    validator.OneOfFold("format", format, []string{"png", "svg"}),
//	    validator.ValidHexColor("fg", fg),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    // errs.Has("format"), errs.Get("fg")
//	}
package validator
