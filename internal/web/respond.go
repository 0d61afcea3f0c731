package web

import (
	"encoding/json"
	"net/http"
)

// Error codes of the public API.
const (
	CodeMissingText     = "MISSING_TEXT"
	CodeValidation      = "VALIDATION_ERROR"
	CodeParse           = "PARSE_ERROR"
	CodeInternal        = "INTERNAL_ERROR"
	CodeRateLimited     = "RATE_LIMITED"
	CodeUnsupportedLogo = "UNSUPPORTED_LOGO"
	CodeLogoTooLarge    = "LOGO_TOO_LARGE"
)

// APIError is the error body of the public API.
type APIError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type apiErrorResponse struct {
	status int
	body   APIError
}

func (e apiErrorResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(e.status)
	return json.NewEncoder(w).Encode(e.body)
}

func apiError(status int, code, msg string) apiErrorResponse {
	return apiErrorResponse{status: status, body: APIError{Error: msg, Code: code}}
}

// failure hands err to the route's error handler.
type failure struct{ err error }

func (f failure) Render(http.ResponseWriter, *http.Request) error { return f.err }

func fail(err error) failure { return failure{err: err} }
