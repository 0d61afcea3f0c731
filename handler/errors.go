package handler

import "errors"

var (
	// ErrNilResponse is returned when a handler returns nil instead of a Response.
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSSENotInitialized is returned when a stream is used on a non-datastar request.
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)
