// Package logging provides structured logging utilities for namespace-pods.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Host/URL sanitization for security
//   - Credential masking
//   - Consistent attribute naming across the codebase
//
// # Usage Patterns
//
// Create the process logger once and wrap it for the Kubernetes client:
//
//	logger, err := logging.New("info", "text", os.Stderr)
//	if err != nil {
//	    return err
//	}
//	adapter := logging.NewSlogAdapter(logger)
//
// Log with standard attributes:
//
//	logger.Debug("listing pods",
//	    logging.Query("list", "pods", "demo"))
//
//	logger.Debug("settings loaded",
//	    logging.Connection(host, token))
//
// # Security Considerations
//
//   - API server URLs have IP addresses redacted to prevent topology leakage
//   - Bearer tokens are never logged directly, only their length
package logging
