// Package requestid tags every request with a correlation ID.
//
// Middleware reuses a well-formed X-Request-ID header or generates a UUID,
// stores it in the request context and echoes it in the response.
// LoggerExtractor feeds the ID into pkg/logger so every record written
// while serving the request carries request_id.
package requestid
