// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and both console and JSON encodings, so the same
// binary can log readably when run by hand and structurally when run by a
// scheduler.
//
// # Run Correlation
//
// Every sync run is assigned a run ID. The WithRunID helper attaches it to the
// logger so all lines belonging to one run can be correlated after the fact.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (scheduler) or console (interactive)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, runID)
//	log.Info("Fetched feed file", zap.String("remote", path))
package logger
