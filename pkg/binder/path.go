package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// Path creates a path parameter binder backed by a router extractor.
// Fields use `path:"name"` tags; empty values leave the zero value in place.
//
//	type ImageRequest struct {
//		Handle string `path:"handle"`
//	}
//
//	r.Get("/preview/image/{handle}", handler.Wrap(image,
//		handler.WithBinder[handler.Context, ImageRequest](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidPath)
		}
		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidPath)
		}

		rt := rv.Type()
		for i := range rv.NumField() {
			field := rv.Field(i)
			fieldType := rt.Field(i)
			if !field.CanSet() {
				continue
			}
			name, skip := parseFieldTag(fieldType, "path")
			if skip {
				continue
			}
			value := extractor(r, name)
			if value == "" {
				continue
			}
			if err := setFieldValue(field, fieldType.Type, []string{value}); err != nil {
				return fmt.Errorf("%w: field %s: %w", ErrInvalidPath, fieldType.Name, err)
			}
		}
		return nil
	}
}
