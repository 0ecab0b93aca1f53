// Package errors provides error handling for the rrn module.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for user-facing messages
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrOutOfRange) {
//	    // handle rejected parameter
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
)

// Sentinel errors for the register-number domain.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrOutOfRange indicates an encode or generate parameter outside the
	// register's domain: a birth date before 1900-01-01, a sequence number
	// outside [1, 998], or an inverted date range.
	ErrOutOfRange = New("out of range")

	// ErrMalformed indicates a candidate without the shape of a register
	// number: not exactly 11 digits after stripping formatting, or a
	// leading field that is not a YYMMDD date.
	ErrMalformed = New("malformed register number")

	// ErrChecksum indicates a well-shaped candidate whose check digits
	// match neither century interpretation.
	ErrChecksum = New("checksum mismatch")
)

// IsOutOfRangeError checks if an error is or wraps ErrOutOfRange
func IsOutOfRangeError(err error) bool {
	return err != nil && Is(err, ErrOutOfRange)
}

// IsMalformedError checks if an error is or wraps ErrMalformed
func IsMalformedError(err error) bool {
	return err != nil && Is(err, ErrMalformed)
}

// IsChecksumError checks if an error is or wraps ErrChecksum
func IsChecksumError(err error) bool {
	return err != nil && Is(err, ErrChecksum)
}

// NewOutOfRangeError creates an out-of-range error with a formatted message
func NewOutOfRangeError(format string, args ...interface{}) error {
	return Wrap(ErrOutOfRange, Newf(format, args...).Error())
}

// NewMalformedError creates a malformed-number error with a formatted message
func NewMalformedError(format string, args ...interface{}) error {
	return Wrap(ErrMalformed, Newf(format, args...).Error())
}

// NewChecksumError creates a checksum-mismatch error with a formatted message
func NewChecksumError(format string, args ...interface{}) error {
	return Wrap(ErrChecksum, Newf(format, args...).Error())
}
