package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// VisitorID records the anonymous visitor identifier under the key "visitor_id".
// If id is nil, it returns an empty Attr.
func VisitorID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("visitor_id", id)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// ContentType records the QR content type under the key "content_type".
func ContentType(ct string) slog.Attr {
	return slog.String("content_type", ct)
}

// Generation records a render generation number under the key "generation".
func Generation(n uint64) slog.Attr {
	return slog.Uint64("generation", n)
}

// ImageFormat records an image output format under the key "format".
func ImageFormat(f string) slog.Attr {
	return slog.String("format", f)
}

// Size records an image size in pixels under the key "size".
func Size(px int) slog.Attr {
	return slog.Int("size", px)
}

// PreviewHandle records a preview image handle under the key "handle".
func PreviewHandle(h string) slog.Attr {
	return slog.String("handle", h)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Handler records the handler name under the key "handler".
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}
