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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrInvalidMode ErrorCode = "INVALID_MODE"

	// Rule errors
	ErrInvalidPattern     ErrorCode = "INVALID_PATTERN"
	ErrRuleSourceNotFound ErrorCode = "RULE_SOURCE_NOT_FOUND"
	ErrRuleSourceParse    ErrorCode = "RULE_SOURCE_PARSE"
	ErrRulePairInvalid    ErrorCode = "RULE_PAIR_INVALID"

	// Document errors
	ErrInputRead    ErrorCode = "INPUT_READ"
	ErrInputMissing ErrorCode = "INPUT_MISSING"
	ErrOutputWrite  ErrorCode = "OUTPUT_WRITE"
)

// Process exit codes returned by ExitCode
const (
	ExitFailure        = 1
	ExitUsage          = 2
	ExitInvalidPattern = 3
	ExitIO             = 4
)

// ArbitratorError represents a structured error with code and details
type ArbitratorError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ArbitratorError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ArbitratorError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ArbitratorError) Is(target error) bool {
	var targetErr *ArbitratorError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ArbitratorError with the given code and message
func New(code ErrorCode, message string) *ArbitratorError {
	return &ArbitratorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ArbitratorError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ArbitratorError {
	return &ArbitratorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ArbitratorError
func Wrap(err error, code ErrorCode, message string) *ArbitratorError {
	if err == nil {
		return nil
	}
	return &ArbitratorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ArbitratorError {
	if err == nil {
		return nil
	}
	return &ArbitratorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ArbitratorError) WithDetail(key string, value interface{}) *ArbitratorError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var arbErr *ArbitratorError
	if errors.As(err, &arbErr) {
		return arbErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ArbitratorError
func GetErrorCode(err error) ErrorCode {
	var arbErr *ArbitratorError
	if errors.As(err, &arbErr) {
		return arbErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an ArbitratorError
func GetErrorDetails(err error) map[string]interface{} {
	var arbErr *ArbitratorError
	if errors.As(err, &arbErr) {
		return arbErr.Details
	}
	return nil
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetErrorCode(err) {
	case ErrInvalidPattern:
		return ExitInvalidPattern
	case ErrConfigLoad, ErrConfigParse, ErrConfigValid, ErrInvalidMode,
		ErrRuleSourceNotFound, ErrRuleSourceParse, ErrRulePairInvalid, ErrInvalidInput:
		return ExitUsage
	case ErrInputRead, ErrInputMissing, ErrOutputWrite:
		return ExitIO
	default:
		return ExitFailure
	}
}
