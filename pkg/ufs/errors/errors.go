// Package errors provides error types and error codes for UFS create-file
// options. This is a leaf package with no internal dependencies so that both
// the security layer and the options package can return the same error type.
//
// Import graph: errors <- security <- ufs
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents the type of error that occurred.
type ErrorCode int

const (
	// ErrIdentityResolution indicates the login user or group could not be
	// resolved while building default options.
	ErrIdentityResolution ErrorCode = iota + 1

	// ErrIOError indicates an I/O failure while reading identity information
	// (account database, credential cache, keytab).
	ErrIOError

	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument

	// ErrNotSupported indicates the requested mode is not supported.
	ErrNotSupported

	// ErrMalformedWire indicates wire bytes could not be decoded.
	ErrMalformedWire
)

// String returns a human-readable name for the error code.
func (e ErrorCode) String() string {
	switch e {
	case ErrIdentityResolution:
		return "IdentityResolution"
	case ErrIOError:
		return "IOError"
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrNotSupported:
		return "NotSupported"
	case ErrMalformedWire:
		return "MalformedWire"
	default:
		return fmt.Sprintf("Unknown(%d)", e)
	}
}

// UfsError represents a UFS options error with an error code and an optional cause.
type UfsError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UfsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *UfsError) Unwrap() error {
	return e.Err
}

// ============================================================================
// Factory Functions
// ============================================================================

// NewIdentityResolutionError wraps a provider failure raised while resolving
// the default owner of a file.
func NewIdentityResolutionError(err error) *UfsError {
	return &UfsError{
		Code:    ErrIdentityResolution,
		Message: "failed to resolve login identity",
		Err:     err,
	}
}

// NewIOError creates an IOError for the given operation.
func NewIOError(operation string, err error) *UfsError {
	return &UfsError{
		Code:    ErrIOError,
		Message: operation,
		Err:     err,
	}
}

// NewInvalidArgumentError creates an InvalidArgument error.
func NewInvalidArgumentError(message string) *UfsError {
	return &UfsError{
		Code:    ErrInvalidArgument,
		Message: message,
	}
}

// NewNotSupportedError creates a NotSupported error.
func NewNotSupportedError(message string) *UfsError {
	return &UfsError{
		Code:    ErrNotSupported,
		Message: message,
	}
}

// NewMalformedWireError creates a MalformedWire error.
func NewMalformedWireError(message string, err error) *UfsError {
	return &UfsError{
		Code:    ErrMalformedWire,
		Message: message,
		Err:     err,
	}
}

// ============================================================================
// Error Type Checking Helpers
// ============================================================================

// CodeOf returns the code of the first UfsError in err's chain, or 0.
func CodeOf(err error) ErrorCode {
	var ufsErr *UfsError
	if errors.As(err, &ufsErr) {
		return ufsErr.Code
	}
	return 0
}

// IsIdentityResolutionError returns true if the error is an IdentityResolution error.
func IsIdentityResolutionError(err error) bool {
	return CodeOf(err) == ErrIdentityResolution
}

// IsIOError returns true if the error is an IOError.
func IsIOError(err error) bool {
	return CodeOf(err) == ErrIOError
}

// IsInvalidArgumentError returns true if the error is an InvalidArgument error.
func IsInvalidArgumentError(err error) bool {
	return CodeOf(err) == ErrInvalidArgument
}

// IsMalformedWireError returns true if the error is a MalformedWire error.
func IsMalformedWireError(err error) bool {
	return CodeOf(err) == ErrMalformedWire
}
