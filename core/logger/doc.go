// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). CLI runs use the console encoding with colored
// levels; automation can switch to json via configuration.
//
// # Run correlation
//
// Every reconciliation or JET run is stamped with a run ID. The WithRunID
// helper attaches that ID to the logger so all log entries of one run can be
// correlated in aggregated output.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (development/CLI) or json (production)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Loaded general ledger", zap.Int("rows", n))
package logger
