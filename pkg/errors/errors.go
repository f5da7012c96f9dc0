// Package errors provides structured error types for cargodeps.
//
// Every failure that can stop the program before the interactive session
// starts carries a machine-readable [Code], so callers can branch on the
// category without matching message text:
//
//	err := errors.New(errors.ErrCodeMissingRoot, "no root package found")
//	if errors.Is(err, errors.ErrCodeMissingRoot) {
//	    // virtual workspace, nothing to browse
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeCargoFailed, origErr, "cargo metadata failed")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Dependency graph errors
	ErrCodeMissingRoot Code = "MISSING_ROOT_PACKAGE"
	ErrCodeUnresolved  Code = "UNRESOLVED_DEPENDENCY"

	// Input errors
	ErrCodeInvalidMetadata    Code = "INVALID_METADATA"
	ErrCodeInvalidManifest    Code = "INVALID_MANIFEST"
	ErrCodeInvalidLockfile    Code = "INVALID_LOCKFILE"
	ErrCodeInvalidRequirement Code = "INVALID_REQUIREMENT"
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"
	ErrCodeFileNotFound       Code = "FILE_NOT_FOUND"

	// Provider errors
	ErrCodeCargoFailed Code = "CARGO_FAILED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types it returns the message without the code prefix, followed
// by the cause when one is attached. Other errors are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	return err.Error()
}
