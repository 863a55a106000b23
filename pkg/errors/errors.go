package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Materialization errors
	ErrSourceNotFound  ErrorCode = "SOURCE_NOT_FOUND"
	ErrMetadataRead    ErrorCode = "METADATA_READ"
	ErrUnsupportedKind ErrorCode = "UNSUPPORTED_ENTRY_KIND"
	ErrTypeMismatch    ErrorCode = "TYPE_MISMATCH"
	ErrCreate          ErrorCode = "CREATE"
	ErrOwnership       ErrorCode = "OWNERSHIP"
	ErrPermissionSync  ErrorCode = "PERMISSION_SYNC"
)

// Detail keys attached to materialization errors
const (
	DetailPath = "path"
	DetailOp   = "op"
)

// PersistError represents a structured error with code and details
type PersistError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PersistError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PersistError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PersistError) Is(target error) bool {
	var targetErr *PersistError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PersistError with the given code and message
func New(code ErrorCode, message string) *PersistError {
	return &PersistError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PersistError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PersistError {
	return &PersistError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PersistError
func Wrap(err error, code ErrorCode, message string) *PersistError {
	if err == nil {
		return nil
	}
	return &PersistError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PersistError {
	if err == nil {
		return nil
	}
	return &PersistError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PersistError) WithDetail(key string, value interface{}) *PersistError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PersistError) WithDetails(details map[string]interface{}) *PersistError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var persistErr *PersistError
	if errors.As(err, &persistErr) {
		return persistErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PersistError
func GetErrorCode(err error) ErrorCode {
	var persistErr *PersistError
	if errors.As(err, &persistErr) {
		return persistErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PersistError
func GetErrorDetails(err error) map[string]interface{} {
	var persistErr *PersistError
	if errors.As(err, &persistErr) {
		return persistErr.Details
	}
	return nil
}

// GetErrorPath returns the offending path recorded on an error, if any
func GetErrorPath(err error) string {
	if path, ok := GetErrorDetails(err)[DetailPath].(string); ok {
		return path
	}
	return ""
}
