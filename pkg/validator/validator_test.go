package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("text", "hello"),
			validator.MaxLen("text", "hello", 5),
			validator.Between("width", 256, 128, 512),
		)
		assert.NoError(t, err)
	})

	t.Run("failures keep order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("text", "   "),
			validator.MinNum("width", 64, 128),
			validator.MaxNum("width", 64, 32),
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
		assert.True(t, validator.IsValidationError(err))

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		assert.Equal(t, []string{"text", "width"}, errs.Fields())
		assert.True(t, errs.Has("width"))
		assert.False(t, errs.Has("format"))
		assert.Equal(t, []string{"must be at least 128", "must be at most 32"}, errs.Get("width"))
		assert.Equal(t, "validation failed: text: field is required; width: must be at least 128; width: must be at most 32", err.Error())
	})

	t.Run("wrapped errors are extracted", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("decode: %w", validator.Apply(validator.Required("ssid", "")))
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "validation.required", errs[0].TranslationKey)
	})

	t.Run("nil and foreign errors", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
	})

	t.Run("add", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.True(t, errs.IsEmpty())
		errs.Add(validator.ValidationError{Field: "email", Message: "bad"})
		assert.False(t, errs.IsEmpty())
	})
}

func TestMaxLenCountsRunes(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validator.Apply(validator.MaxLen("name", "Привет", 6)))
	assert.Error(t, validator.Apply(validator.MaxLen("name", "Привет!", 6)))
}

func TestChoiceRules(t *testing.T) {
	t.Parallel()

	levels := []string{"L", "M", "Q", "H"}
	assert.NoError(t, validator.Apply(validator.OneOf("level", "Q", levels)))
	assert.Error(t, validator.Apply(validator.OneOf("level", "q", levels)))
	assert.NoError(t, validator.Apply(validator.OneOfFold("level", "q", levels)))

	err := validator.Apply(validator.OneOfFold("format", "gif", []string{"png", "svg"}))
	errs := validator.ExtractValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "must be one of: png, svg", errs[0].Message)
}

func TestFormatRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rule  validator.Rule
		valid bool
	}{
		{"email", validator.ValidEmail("email", "jane@example.com"), true},
		{"email with name", validator.ValidEmail("email", "Jane <jane@example.com>"), true},
		{"email no domain dot", validator.ValidEmail("email", "jane@localhost"), false},
		{"email blank", validator.ValidEmail("email", " "), false},
		{"email garbage", validator.ValidEmail("email", "not-an-email"), false},
		{"url", validator.ValidURL("url", "https://example.com/path"), true},
		{"url without scheme", validator.ValidURL("url", "example.com"), false},
		{"url scheme allowed", validator.ValidURLWithScheme("url", "https://example.com", []string{"http", "https"}), true},
		{"url scheme rejected", validator.ValidURLWithScheme("url", "ftp://example.com", []string{"http", "https"}), false},
		{"phone international", validator.ValidPhoneChars("phone", "+1 (555) 123-4567"), true},
		{"phone digits only", validator.ValidPhoneChars("phone", "5551234"), true},
		{"phone letters", validator.ValidPhoneChars("phone", "555-CALL-NOW"), false},
		{"phone punctuation only", validator.ValidPhoneChars("phone", "+()-"), false},
		{"phone blank", validator.ValidPhoneChars("phone", ""), false},
		{"hex with hash", validator.ValidHexColor("fg", "#1A2b3C"), true},
		{"hex without hash", validator.ValidHexColor("fg", "ffffff"), true},
		{"hex short", validator.ValidHexColor("fg", "#fff"), false},
		{"hex bad digit", validator.ValidHexColor("fg", "#gggggg"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(tt.rule)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
