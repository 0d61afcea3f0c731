package handler

import "net/http"

// SSEHandler runs for the lifetime of a datastar stream. The stream ends
// when the handler returns or the client goes away (ctx.Done()).
//
//	handler.SSE(func(stream handler.StreamContext) error {
//		updates, cancel := session.Subscribe()
//		defer cancel()
//		for {
//			select {
//			case <-stream.Done():
//				return nil
//			case st, ok := <-updates:
//				if !ok {
//					return nil
//				}
//				if err := stream.SendComponent(views.Preview(st), handler.WithTarget("#preview")); err != nil {
//					return err
//				}
//			}
//		}
//	})
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE creates a streaming response.
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
