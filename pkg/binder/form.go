package binder

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"reflect"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form binds application/x-www-form-urlencoded and multipart/form-data bodies.
// Requests without a body are not applicable.
//
// Tags: `form:"name"` binds a value, `file:"name"` binds an upload as
// *multipart.FileHeader or []*multipart.FileHeader, "-" skips the field.
// Uploaded filenames are reduced to their base name.
//
//	type ComposeRequest struct {
//		ContentType string                `form:"content_type"`
//		LogoPercent int                   `form:"logo_percent"`
//		Logo        *multipart.FileHeader `file:"logo"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasBody(r) {
			return ErrBinderNotApplicable
		}
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: missing content-type header, expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		mt := mediaType(r)

		var values map[string][]string
		var files map[string][]*multipart.FileHeader

		switch {
		case mt == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.Form

		case mt == "multipart/form-data":
			_, params, err := mime.ParseMediaType(contentType)
			if err != nil {
				return fmt.Errorf("%w: malformed content type with boundary", ErrInvalidForm)
			}

			boundary, ok := params["boundary"]
			if !ok || boundary == "" {
				return fmt.Errorf("%w: missing boundary in content type", ErrInvalidForm)
			}

			if !validateBoundary(boundary) {
				return fmt.Errorf("%w: invalid boundary parameter", ErrInvalidForm)
			}

			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}

			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
				files = r.MultipartForm.File
			} else {
				values = make(map[string][]string)
			}

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mt)
		}

		return bindFormAndFiles(v, values, files, ErrInvalidForm)
	}
}

// bindFormAndFiles binds both form values and files to a struct.
func bindFormAndFiles(v any, values map[string][]string, files map[string][]*multipart.FileHeader, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}

	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		// Skip unexported fields
		if !field.CanSet() {
			continue
		}

		formTag := fieldType.Tag.Get("form")
		fileTag := fieldType.Tag.Get("file")

		// Skip if both tags are missing
		if formTag == "" && fileTag == "" {
			continue
		}

		// Handle form tag
		if formTag != "" {
			if formTag == "-" {
				continue // Skip explicitly ignored fields
			}

			// Extract parameter name from tag
			paramName := formTag
			if idx := strings.Index(formTag, ","); idx != -1 {
				paramName = formTag[:idx]
			}

			// Skip empty parameter names
			if paramName == "" {
				continue
			}

			if fieldValues, exists := values[paramName]; exists && len(fieldValues) > 0 {
				clean := make([]string, len(fieldValues))
				for i, fv := range fieldValues {
					clean[i] = sanitizeStringValue(fv)
				}
				if err := setFieldValue(field, fieldType.Type, clean); err != nil {
					return fmt.Errorf("%w: field %s: %w", bindErr, fieldType.Name, err)
				}
			}
		}

		if fileTag != "" && fileTag != "-" && files != nil {
			if fileHeaders, exists := files[fileTag]; exists && len(fileHeaders) > 0 {
				if err := setFileField(field, fieldType.Type, fileHeaders); err != nil {
					return fmt.Errorf("%w: field %s: %v", bindErr, fieldType.Name, err)
				}
			}
		}
	}

	return nil
}

// setFileField sets file values to struct fields.
func setFileField(field reflect.Value, fieldType reflect.Type, fileHeaders []*multipart.FileHeader) error {
	// Sanitize filenames
	for _, fh := range fileHeaders {
		fh.Filename = sanitizeFilename(fh.Filename)
	}

	if fieldType.Kind() == reflect.Slice {
		elemType := fieldType.Elem()
		if elemType != reflect.TypeOf((*multipart.FileHeader)(nil)) {
			return fmt.Errorf("unsupported slice element type for file field: %v", elemType)
		}

		slice := reflect.MakeSlice(fieldType, len(fileHeaders), len(fileHeaders))
		for i, fh := range fileHeaders {
			slice.Index(i).Set(reflect.ValueOf(fh))
		}
		field.Set(slice)
		return nil
	}

	if fieldType == reflect.TypeOf((*multipart.FileHeader)(nil)) {
		if len(fileHeaders) > 0 {
			field.Set(reflect.ValueOf(fileHeaders[0]))
		}
		return nil
	}

	return fmt.Errorf("unsupported type for file field: %v (expected *multipart.FileHeader or []*multipart.FileHeader)", fieldType)
}

// validateBoundary checks a multipart boundary against RFC 2046:
// 1 to 70 characters from the bchars set, not ending with a space.
func validateBoundary(boundary string) bool {
	if len(boundary) == 0 || len(boundary) > 70 || strings.HasSuffix(boundary, " ") {
		return false
	}
	for _, c := range boundary {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case strings.ContainsRune("'()+_,-./:=? ", c):
		default:
			return false
		}
	}
	return true
}

// sanitizeFilename removes any path components and dangerous characters from a filename
// to prevent path traversal attacks and other security issues.
func sanitizeFilename(filename string) string {
	// Replace backslashes with forward slashes to normalize paths
	// This ensures filepath.Base works correctly on Windows-style paths
	filename = strings.ReplaceAll(filename, "\\", "/")

	// Remove any directory components - handles both Unix and Windows paths
	filename = filepath.Base(filename)

	// Remove null bytes and other potentially dangerous characters
	filename = strings.ReplaceAll(filename, "\x00", "")

	// Ensure the filename is not empty or a special directory reference
	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}
