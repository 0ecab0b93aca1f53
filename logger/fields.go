package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldOperation = "operation"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts
	FieldCount      = "count"
	FieldTotalCount = "total_count"

	// Files and paths
	FieldFile = "file"

	// Register numbers
	FieldCandidate = "candidate"
	FieldNumber    = "number"
	FieldSequence  = "sequence"
	FieldBirthDate = "birth_date"
	FieldSex       = "sex"
	FieldSeed      = "seed"
	FieldValid     = "valid"
	FieldFormat    = "format"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type batchValidator struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func newBatchValidator() *batchValidator {
//	    return &batchValidator{
//	        logger: logger.ComponentLogger("cli.validate"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
// Use for sub-operations that need extra context fields.
//
// Example:
//
//	batchLogger := logger.ChildLogger(baseLogger, "count", len(candidates))
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
