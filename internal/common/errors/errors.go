// Package errors provides the service's structured error type and its
// mapping to HTTP status codes and BPMN job errors.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Request / catalog errors
const (
	ErrCodeInvalidInput    ErrorCode = "INVALID_INPUT"
	ErrCodeRoleNotFound    ErrorCode = "ROLE_NOT_FOUND"
	ErrCodeDataLoadFailure ErrorCode = "DATA_LOAD_FAILURE"
)

// Shell errors
const (
	ErrCodeNewsFetchFailed ErrorCode = "NEWS_FETCH_FAILED"
	ErrCodeNewsTimeout     ErrorCode = "NEWS_TIMEOUT"
	ErrCodeNewsNotFound    ErrorCode = "NEWS_NOT_FOUND"
	ErrCodeRouteNotFound   ErrorCode = "ROUTE_NOT_FOUND"
	ErrCodeInternal        ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// Is matches on the error code so callers can compare against the sentinel
// values below with errors.Is.
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidInput    = &StandardError{Code: ErrCodeInvalidInput}
	ErrRoleNotFound    = &StandardError{Code: ErrCodeRoleNotFound}
	ErrDataLoadFailure = &StandardError{Code: ErrCodeDataLoadFailure}
	ErrNewsFetchFailed = &StandardError{Code: ErrCodeNewsFetchFailed}
	ErrNewsTimeout     = &StandardError{Code: ErrCodeNewsTimeout}
	ErrNewsNotFound    = &StandardError{Code: ErrCodeNewsNotFound}
)

// AsStandardError extracts a *StandardError from err's chain. Anything else is
// wrapped as INTERNAL_ERROR.
func AsStandardError(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal Server Error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	for k, v := range e.ErrorVariables {
		vars[k] = v
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewInvalidInputError reports a missing or malformed request field.
func NewInvalidInputError(field, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Message:   details,
		Details:   fmt.Sprintf("field: %s", field),
		Retryable: false,
		Metadata:  map[string]interface{}{"field": field},
		Timestamp: time.Now().UTC(),
	}
}

// NewRoleNotFoundError reports a role that is absent from the catalog along
// with the roles that are available.
func NewRoleNotFoundError(role string, validRoles []string) *StandardError {
	roles := make([]string, len(validRoles))
	copy(roles, validRoles)
	return &StandardError{
		Code:      ErrCodeRoleNotFound,
		Message:   fmt.Sprintf("Role %q not found", role),
		Details:   fmt.Sprintf("valid roles: %s", strings.Join(roles, ", ")),
		Retryable: false,
		Metadata: map[string]interface{}{
			"role":       role,
			"validRoles": roles,
		},
		Timestamp: time.Now().UTC(),
	}
}

// NewDataLoadFailureError reports an unreadable or unparsable role table.
func NewDataLoadFailureError(resource string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDataLoadFailure,
		Message:   "Failed to load role data",
		Details:   fmt.Sprintf("resource: %s, error: %s", resource, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewNewsFetchFailedError creates a retryable upstream news error.
func NewNewsFetchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNewsFetchFailed,
		Message:   "Failed to fetch news",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewNewsTimeoutError creates a retryable upstream timeout error.
func NewNewsTimeoutError(timeout time.Duration) *StandardError {
	return &StandardError{
		Code:      ErrCodeNewsTimeout,
		Message:   "News service timeout",
		Details:   fmt.Sprintf("upstream call exceeded %s", timeout),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNewsNotFoundError reports a news item that does not exist upstream.
func NewNewsNotFoundError(id int64) *StandardError {
	return &StandardError{
		Code:      ErrCodeNewsNotFound,
		Message:   "News item not found",
		Details:   fmt.Sprintf("id: %d", id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRouteNotFoundError is returned for unmatched HTTP routes.
func NewRouteNotFoundError(path string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRouteNotFound,
		Message:   "Route not found",
		Retryable: false,
		Metadata:  map[string]interface{}{"path": path},
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion
// ==========================

// HTTPStatus maps an error code to the response status of the HTTP layer.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeRoleNotFound, ErrCodeNewsNotFound, ErrCodeRouteNotFound:
		return http.StatusNotFound
	case ErrCodeNewsFetchFailed:
		return http.StatusBadGateway
	case ErrCodeNewsTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// GetRetryCount returns the recommended job retry count for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeNewsFetchFailed:
		return 3
	case ErrCodeNewsTimeout:
		return 2
	default:
		// Input, catalog and data-load failures are never retried.
		return 0
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	if roles, ok := stdErr.Metadata["validRoles"]; ok {
		vars["validRoles"] = roles
	}

	return &BPMNError{
		Code:           string(stdErr.Code),
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	case strings.Contains(codeStr, "ROLE") || strings.Contains(codeStr, "DATA_LOAD"):
		return "CATALOG"
	case strings.Contains(codeStr, "NEWS"):
		return "NEWS"
	case strings.Contains(codeStr, "ROUTE"):
		return "HTTP"
	default:
		return "OTHER"
	}
}
