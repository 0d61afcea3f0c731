package binder

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals creates a binder for datastar signal payloads. GET requests carry the
// signals in the "datastar" query parameter, other methods in a JSON body.
// Requests that are not datastar requests are not applicable.
//
//	type PreviewSignals struct {
//		ContentType string         `json:"contentType"`
//		Fields      payload.Fields `json:"fields"`
//	}
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Header.Get("Datastar-Request") != "true" && !r.URL.Query().Has("datastar") {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		sanitizeReflectValue(reflect.ValueOf(v))
		return nil
	}
}
