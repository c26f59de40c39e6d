package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoleNotFoundError_ListsValidRoles(t *testing.T) {
	roles := []string{"Backend Developer", "Frontend Developer"}
	err := NewRoleNotFoundError("Astronaut", roles)

	assert.Equal(t, ErrCodeRoleNotFound, err.Code)
	assert.Contains(t, err.Message, "Astronaut")
	assert.Equal(t, roles, err.Metadata["validRoles"])
	assert.False(t, err.Retryable)

	// the error keeps its own copy of the slice
	roles[0] = "mutated"
	assert.Equal(t, "Backend Developer", err.Metadata["validRoles"].([]string)[0])
}

func TestStandardError_IsMatchesOnCode(t *testing.T) {
	wrapped := fmt.Errorf("analyze: %w", NewInvalidInputError("targetRole", "targetRole is required"))

	assert.True(t, stderrors.Is(wrapped, ErrInvalidInput))
	assert.False(t, stderrors.Is(wrapped, ErrRoleNotFound))
}

func TestDataLoadFailure_UnwrapsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewDataLoadFailureError("role_skills", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrDataLoadFailure)
}

func TestAsStandardError(t *testing.T) {
	std := AsStandardError(fmt.Errorf("wrap: %w", NewNewsTimeoutError(0)))
	assert.Equal(t, ErrCodeNewsTimeout, std.Code)

	plain := AsStandardError(stderrors.New("boom"))
	assert.Equal(t, ErrCodeInternal, plain.Code)
	assert.Equal(t, "boom", plain.Details)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeRoleNotFound, http.StatusNotFound},
		{ErrCodeRouteNotFound, http.StatusNotFound},
		{ErrCodeNewsNotFound, http.StatusNotFound},
		{ErrCodeDataLoadFailure, http.StatusInternalServerError},
		{ErrCodeNewsFetchFailed, http.StatusBadGateway},
		{ErrCodeNewsTimeout, http.StatusGatewayTimeout},
		{ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.code))
		})
	}
}

func TestConvertToBPMNError(t *testing.T) {
	bpmn := ConvertToBPMNError(NewRoleNotFoundError("X", []string{"Data Scientist"}))
	require.NotNil(t, bpmn)
	assert.Equal(t, "ROLE_NOT_FOUND", bpmn.Code)
	assert.Equal(t, 0, bpmn.Retries)
	assert.Equal(t, []string{"Data Scientist"}, bpmn.ErrorVariables["validRoles"])

	vars := bpmn.ToErrorVariables()
	assert.Equal(t, "ROLE_NOT_FOUND", vars["errorCode"])
	assert.Equal(t, "ROLE_NOT_FOUND", vars["originalErrorCode"])

	retryable := ConvertToBPMNError(NewNewsFetchFailedError(stderrors.New("502")))
	assert.Equal(t, 3, retryable.Retries)
	assert.True(t, retryable.Retryable)
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInvalidInput))
	assert.Equal(t, "CATALOG", GetErrorCategory(ErrCodeRoleNotFound))
	assert.Equal(t, "CATALOG", GetErrorCategory(ErrCodeDataLoadFailure))
	assert.Equal(t, "NEWS", GetErrorCategory(ErrCodeNewsTimeout))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
	assert.False(t, IsRetryableErrorCode(ErrCodeDataLoadFailure))
}
