package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrCaseNotFound(caseID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_CASE_NOT_FOUND,
		Message:  "Case not found",
	}.WithDetail("case_id", caseID)
}

// Assessment Pipeline Errors

// ErrTranscriptNotReady signals the polling budget elapsed before the voice
// platform reported the conversation as finished. Recoverable by client retry.
func ErrTranscriptNotReady(conversationID string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_TRANSCRIPT_NOT_READY,
		Message:  "Transcript not ready",
	}.WithDetail("conversation_id", conversationID)
}

// ErrUpstream wraps a non-2xx or transport failure from an external provider
func ErrUpstream(provider string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_UPSTREAM_FAILED,
		Message:  fmt.Sprintf("Upstream provider %s failed", provider),
	}.WithDetail("provider", provider)
}

// ErrInvalidUpstreamShape signals a provider payload that violates its
// contract (e.g. a finished conversation whose transcript is neither an array
// of turns nor a string). Not retried.
func ErrInvalidUpstreamShape(provider string, detail string) AppError {
	return AppError{
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_UPSTREAM_SHAPE_INVALID,
		Message:  fmt.Sprintf("Unexpected payload shape from %s", provider),
	}.WithDetail("provider", provider).WithDetail("shape", detail)
}

// ErrGenerationExhausted signals that no model output passed validation within
// the attempt budget. Content-quality failure, distinct from transport errors.
func ErrGenerationExhausted(attempts int, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_GENERATION_EXHAUSTED,
		Message:  "Model output failed validation after retries",
	}.WithDetail("attempts", fmt.Sprintf("%d", attempts))
}

// Persistence Errors

func ErrPersistence(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_PERSISTENCE_FAILED,
		Message:  "Failed to persist record",
	}
}
