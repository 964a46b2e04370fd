package errors

import (
	stdErrors "errors"
	"fmt"
)

const (
	// FallbackAPIMessage is used when the gateway rejects a request without a message.
	FallbackAPIMessage = "Something went wrong"
	// NetworkMessage is surfaced when the gateway could not be reached at all.
	NetworkMessage = "Network error. Please check your connection."
	// InvalidLoginMessage is surfaced when a login succeeds without issuing a token.
	InvalidLoginMessage = "Invalid login response"
)

// ParseError represents a configuration file that could not be parsed.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures input rejected before it reaches the store, as well
// as configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NetworkError represents a transport failure talking to the gateway.
type NetworkError struct {
	Op  string
	Err error
}

// NewNetworkError constructs a NetworkError for the given operation.
func NewNetworkError(op string, err error) error {
	return &NetworkError{Op: op, Err: err}
}

func (e *NetworkError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *NetworkError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// APIError is a non-2xx response from the gateway.
type APIError struct {
	Status  int
	Message string
}

// NewAPIError constructs an APIError. An empty message is replaced with the
// generic fallback.
func NewAPIError(status int, message string) error {
	if message == "" {
		message = FallbackAPIMessage
	}
	return &APIError{Status: status, Message: message}
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("api error [%d]: %s", e.Status, e.Message)
}

// StorageError indicates a read or write failure against durable storage.
type StorageError struct {
	Op  string
	Key string
	Err error
}

// NewStorageError constructs a StorageError.
func NewStorageError(op, key string, err error) error {
	return &StorageError{Op: op, Key: key, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("storage error [%s %s]: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage error [%s]: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Reason collapses an error into the human-readable string shown to users.
// Structured detail such as status codes is intentionally dropped.
func Reason(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if stdErrors.As(err, &apiErr) {
		if apiErr.Message == "" {
			return FallbackAPIMessage
		}
		return apiErr.Message
	}

	var netErr *NetworkError
	if stdErrors.As(err, &netErr) {
		return NetworkMessage
	}

	var validationErr *ValidationError
	if stdErrors.As(err, &validationErr) {
		return validationErr.Message
	}

	return err.Error()
}
