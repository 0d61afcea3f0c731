// Package httpserver runs the qrgen HTTP server with graceful shutdown and
// provides liveness and readiness probe handlers.
//
//	srv := httpserver.NewFromConfig(cfg,
//	    httpserver.WithLogger(log),
//	    httpserver.WithStopHook(previews.Close),
//	)
//	return srv.Run(ctx, router)
//
// Run blocks until ctx is done, SIGINT/SIGTERM arrives or the listener fails.
// Shutdown cancels every request context first so preview SSE streams end
// promptly, then waits for handlers and runs the stop hooks.
package httpserver
