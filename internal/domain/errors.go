package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Document / LLM specific errors
	CodeFetchError   ErrorCode = "FETCH_ERROR"
	CodeLLMProvider  ErrorCode = "LLM_PROVIDER_ERROR"
	CodeLLMMalformed ErrorCode = "LLM_MALFORMED_RESPONSE"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As chains
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

// NewFetchError signals that a caller-supplied document URL could not be
// fetched. The status is kept in Context for diagnostics only.
func NewFetchError(url string, status int) *DomainError {
	err := NewError(CodeFetchError, "Unable to fetch document content", nil)
	err.Context = map[string]interface{}{
		"url":    url,
		"status": status,
	}
	return err
}

// NewFetchTransportError signals that the GET itself failed before any
// status code was received.
func NewFetchTransportError(url string, cause error) *DomainError {
	err := NewError(CodeFetchError, "Unable to fetch document content", cause)
	err.Context = map[string]interface{}{"url": url}
	return err
}

// NewLLMProviderError wraps an error status returned by the completion
// provider. The provider's status and body travel inside cause and are
// logged, never shown to the end user.
func NewLLMProviderError(cause error) *DomainError {
	return NewError(CodeLLMProvider, "Failed to process with LLM service", cause)
}

// NewLLMMalformedResponseError signals a success payload that lacks the
// expected completion field.
func NewLLMMalformedResponseError(cause error) *DomainError {
	return NewError(CodeLLMMalformed, "Invalid response from LLM service", cause)
}
