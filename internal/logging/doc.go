// Package logging provides structured logging for netdash.
//
// This package wraps zap with convenience functions for the logging
// patterns used throughout the dashboard. Logging is silent by default so
// it never corrupts the interactive TUI; set NETDASH_LOG_LEVEL to enable
// output on stderr.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (API request/response traces)
//   - Info: Normal operations (job submissions, settings changes)
//   - Warn: Non-fatal issues (unexpected payload shapes, transport failures)
//   - Error: Fatal issues (startup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Sync job submitted",
//	    zap.String("job_id", "42"),
//	    zap.Int("hostnames", 3),
//	)
//
// # Specialized Logging
//
// Backend request logging carries a per-request correlation id that is
// also sent to the backend in the X-Request-ID header:
//
//	logging.LogAPIRequest(requestID, "GET", "/devices", 0)
//	logging.LogAPIResponse(requestID, "GET", "/devices", 200, 4096, elapsed)
//	logging.LogAPIFailure(requestID, "GET", "/devices", err)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
