package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Resolution errors
const (
	// ErrCodeKeyNotFound indicates no provider produced a value for the key.
	ErrCodeKeyNotFound ErrorCode = "KEY_NOT_FOUND"
	// ErrCodeProviderNotFound indicates no registered provider matches the name.
	ErrCodeProviderNotFound ErrorCode = "PROVIDER_NOT_FOUND"
	// ErrCodeProviderInitFailed indicates a provider factory failed to construct an instance.
	ErrCodeProviderInitFailed ErrorCode = "PROVIDER_INIT_FAILED"
)

// Persistence errors
const (
	// ErrCodeWriteFailed indicates no writable provider accepted the key.
	ErrCodeWriteFailed ErrorCode = "WRITE_FAILED"
	// ErrCodeNotWritable indicates the selected providers do not support writing.
	ErrCodeNotWritable ErrorCode = "NOT_WRITABLE"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidConfig indicates the tool configuration is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeSubprocess indicates an external command failed.
	ErrCodeSubprocess ErrorCode = "SUBPROCESS_ERROR"
)
