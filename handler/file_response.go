package handler

import (
	"net/http"
	"strconv"
)

type fileResponse struct {
	data        []byte
	contentType string
	status      int
	filename    string
	header      http.Header
}

// FileOption configures a File response.
type FileOption func(*fileResponse)

// WithAttachment marks the body as a download with the given filename.
func WithAttachment(filename string) FileOption {
	return func(f *fileResponse) {
		f.filename = filename
	}
}

// WithCacheControl sets the Cache-Control header.
func WithCacheControl(value string) FileOption {
	return WithHeader("Cache-Control", value)
}

// WithHeader sets an arbitrary response header.
func WithHeader(key, value string) FileOption {
	return func(f *fileResponse) {
		f.header.Set(key, value)
	}
}

func WithFileStatus(status int) FileOption {
	return func(f *fileResponse) {
		f.status = status
	}
}

// File responds with raw bytes of the given content type.
//
//	return handler.File(img.Data, "image/png",
//		handler.WithAttachment("qrcode.png"),
//		handler.WithCacheControl("no-store"),
//	)
func File(data []byte, contentType string, opts ...FileOption) Response {
	f := &fileResponse{
		data:        data,
		contentType: contentType,
		status:      http.StatusOK,
		header:      make(http.Header),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *fileResponse) Render(w http.ResponseWriter, r *http.Request) error {
	h := w.Header()
	for k, vs := range f.header {
		h[k] = vs
	}
	h.Set("Content-Type", f.contentType)
	h.Set("Content-Length", strconv.Itoa(len(f.data)))
	h.Set("X-Content-Type-Options", "nosniff")
	if f.filename != "" {
		h.Set("Content-Disposition", "attachment; filename="+strconv.Quote(f.filename))
	}
	w.WriteHeader(f.status)
	if r.Method == http.MethodHead {
		return nil
	}
	_, err := w.Write(f.data)
	return err
}
