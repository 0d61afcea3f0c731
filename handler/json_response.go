package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/dmitrymomot/qrgen/pkg/validator"
)

// JSONResponse is the JSON envelope.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail is the error part of the envelope.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON wraps v in the envelope. Errors and *ErrorDetail values go into the
// error field with a matching status; anything else becomes data.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case *ErrorDetail:
		r.body.Error = val
		r.status = http.StatusInternalServerError
	case error:
		r.body.Error, r.status = errorToDetail(val)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders an error envelope.
func JSONError(err any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}

	switch e := err.(type) {
	case *ErrorDetail:
		r.body.Error = e
	case error:
		r.body.Error, r.status = errorToDetail(e)
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// errorToDetail maps an error to its envelope detail and HTTP status.
func errorToDetail(err error) (*ErrorDetail, int) {
	var valErr ValidationError
	if errors.As(err, &valErr) {
		return validationDetail(valErr), http.StatusUnprocessableEntity
	}

	var ruleErrs validator.ValidationErrors
	if errors.As(err, &ruleErrs) {
		return validationDetail(FromValidator(ruleErrs)), http.StatusUnprocessableEntity
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return &ErrorDetail{
			Code:    httpErr.Key,
			Message: http.StatusText(httpErr.Code),
		}, httpErr.Code
	}

	return &ErrorDetail{
		Code:    "internal_error",
		Message: err.Error(),
	}, http.StatusInternalServerError
}

func validationDetail(valErr ValidationError) *ErrorDetail {
	detail := &ErrorDetail{
		Code:    "validation_error",
		Message: valErr.Error(),
	}
	if len(valErr) > 0 {
		detail.Details = make(map[string][]string, len(valErr))
		maps.Copy(detail.Details, valErr)
	}
	return detail
}
