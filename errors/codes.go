package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeInvalidConfig indicates a configuration value is out of range.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInvalidInput indicates a struct failed tag validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeConfigLoad indicates configuration files or environment could not be read.
	ErrCodeConfigLoad ErrorCode = "CONFIG_LOAD_FAILED"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
