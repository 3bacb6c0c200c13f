// Package errors provides unified error handling for secretkit.
// It implements a structured error type with machine-readable codes so
// the CLI can map failures to exit codes and one-line diagnostics.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// KeyNotFound creates a new AppError for a key no provider could resolve.
func KeyNotFound(key string, providersTried []string) *AppError {
	return &AppError{
		Code:    ErrCodeKeyNotFound,
		Message: fmt.Sprintf("key '%s' not found in any of the providers: %s", key, strings.Join(providersTried, ", ")),
		Details: map[string]any{"key": key, "providers": providersTried},
	}
}

// ProviderNotFound creates a new AppError for an unknown provider name.
func ProviderNotFound(name string) *AppError {
	return &AppError{
		Code:    ErrCodeProviderNotFound,
		Message: fmt.Sprintf("provider '%s' not found", name),
		Details: map[string]any{"provider": name},
	}
}

// ProviderInitFailed creates a new AppError for a failed provider construction.
func ProviderInitFailed(name string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeProviderInitFailed,
		Message: fmt.Sprintf("failed to initialize provider '%s'", name),
		Details: map[string]any{"provider": name},
		Cause:   cause,
	}
}

// WriteFailed creates a new AppError for a key that could not be persisted.
func WriteFailed(key string) *AppError {
	return &AppError{
		Code:    ErrCodeWriteFailed,
		Message: fmt.Sprintf("failed to persist key '%s' to any writable provider", key),
		Details: map[string]any{"key": key},
	}
}

// NotWritable creates a new AppError when the selected providers cannot write.
func NotWritable(names []string) *AppError {
	return &AppError{
		Code:    ErrCodeNotWritable,
		Message: fmt.Sprintf("providers do not support writing: %s", strings.Join(names, ", ")),
		Details: map[string]any{"providers": names},
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("invalid input: %s", reason),
		Details: details,
	}
}

// InvalidConfig creates a new AppError for a bad tool configuration.
func InvalidConfig(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfig,
		Message: reason,
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(message string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Cause:   cause,
	}
}

// Subprocess creates a new AppError for a failed external command.
func Subprocess(binary string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeSubprocess,
		Message: fmt.Sprintf("command '%s' failed", binary),
		Details: map[string]any{"binary": binary},
		Cause:   cause,
	}
}

// --- Inspection helpers ---

// GetCode extracts the ErrorCode from an error chain.
// Returns ErrCodeInternal for non-AppError errors and "" for nil.
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether the error chain carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// As is a convenience re-export of the standard errors.As.
func As(err error, target any) bool { return stderrors.As(err, target) }

// Is is a convenience re-export of the standard errors.Is.
func Is(err, target error) bool { return stderrors.Is(err, target) }
