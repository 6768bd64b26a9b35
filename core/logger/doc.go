// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production) and tags every sync run
// with a correlation id.
//
// # Run correlation
//
// WithRunID attaches a generated run_id field to the logger. Every log
// line produced during one marketplace sync carries the same id, so
// runs scheduled back to back can be separated in aggregated output.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log)
//	log.Info("sync started")
package logger
