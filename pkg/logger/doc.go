// Package logger builds slog loggers and keeps attribute keys uniform.
//
// New returns a *slog.Logger whose handler runs ContextExtractor callbacks
// on every record, so request-scoped values such as the request ID end up in
// each line without threading them through call sites:
//
//	log := logger.New(
//	    logger.WithEnvironment(env, "qrgen"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "render complete",
//	    logger.ContentType("wifi"),
//	    logger.Generation(gen),
//	    logger.Duration(time.Since(start)),
//	)
//
// The attribute helpers in attr.go return an empty slog.Attr for nil input,
// which slog drops, so logger.Error(err) needs no nil check.
package logger
