// Package errors provides error types and utilities for modelfetch.
// It extends the standard errors package with wrapping helpers and the
// sentinel errors every acquisition strategy reports through.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the acquisition failure taxonomy
var (
	// ErrToolMissing indicates a required external binary is not installed
	ErrToolMissing = errors.New("required tool missing")

	// ErrRemoteFailure indicates a clone, install or download against a remote failed
	ErrRemoteFailure = errors.New("network or remote failure")

	// ErrNoInstallable indicates a fetched source tree has no install descriptor
	ErrNoInstallable = errors.New("no installable artifact found")

	// ErrLicenseNotAccepted indicates a platform license prerequisite is unmet
	ErrLicenseNotAccepted = errors.New("license not accepted")

	// ErrTimeout indicates a strategy exceeded its wall-clock budget
	ErrTimeout = errors.New("operation timed out")

	// ErrInvalidInput indicates invalid input was provided
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnexpected indicates a strategy failed in a way nobody planned for
	ErrUnexpected = errors.New("unexpected failure")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

// Error implements the error interface
func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the underlying error
func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
//
// Example:
//
//	if err := clone(ctx); err != nil {
//	    return errors.Wrap(err, "clone repository")
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
// This is a convenience wrapper around errors.As from the standard library.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsToolMissing reports whether the error is a missing tool error
func IsToolMissing(err error) bool {
	return Is(err, ErrToolMissing)
}

// IsRemoteFailure reports whether the error is a network or remote failure
func IsRemoteFailure(err error) bool {
	return Is(err, ErrRemoteFailure)
}

// IsNoInstallable reports whether the error is a missing install descriptor error
func IsNoInstallable(err error) bool {
	return Is(err, ErrNoInstallable)
}

// IsLicenseNotAccepted reports whether the error is an unaccepted license error
func IsLicenseNotAccepted(err error) bool {
	return Is(err, ErrLicenseNotAccepted)
}

// IsTimeout reports whether the error is a timeout error
func IsTimeout(err error) bool {
	return Is(err, ErrTimeout)
}

// IsInvalidInput reports whether the error is an invalid input error
func IsInvalidInput(err error) bool {
	return Is(err, ErrInvalidInput)
}
