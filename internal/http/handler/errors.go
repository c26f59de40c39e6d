package handler

import (
	"encoding/json"
	"io"
	"net/http"

	apperrors "skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/internal/common/logger"
	"skillgap-analyzer/internal/common/validation"
	"skillgap-analyzer/internal/http/dto"
	"skillgap-analyzer/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 1 << 20

// ErrorWriter renders errors as the JSON error envelope.
type ErrorWriter struct {
	logger        logger.Logger
	exposeDetails bool
}

// NewErrorWriter builds an ErrorWriter. With exposeDetails set, internal
// error details are included in 5xx responses.
func NewErrorWriter(log logger.Logger, exposeDetails bool) *ErrorWriter {
	return &ErrorWriter{logger: log, exposeDetails: exposeDetails}
}

func (w *ErrorWriter) Write(c *gin.Context, err error) {
	std := apperrors.AsStandardError(err)
	status := apperrors.HTTPStatus(std.Code)

	resp := dto.ErrorResponse{
		Success:   false,
		Message:   std.Message,
		Code:      string(std.Code),
		RequestID: middleware.RequestID(c),
	}
	if roles, ok := std.Metadata["validRoles"].([]string); ok {
		resp.ValidRoles = roles
	}
	if path, ok := std.Metadata["path"].(string); ok {
		resp.Path = path
	}
	if errs, ok := std.Metadata["errors"].([]validation.ValidationError); ok {
		resp.Errors = errs
	}

	fields := map[string]interface{}{
		"requestId": resp.RequestID,
		"path":      c.Request.URL.Path,
		"status":    status,
		"errorCode": resp.Code,
		"details":   std.Details,
	}
	if status >= http.StatusInternalServerError {
		w.logger.Error("request failed", fields)
		if w.exposeDetails {
			resp.Details = std.Details
		}
	} else {
		w.logger.Debug("request rejected", fields)
		resp.Details = std.Details
	}

	c.AbortWithStatusJSON(status, resp)
}

// bindJSON validates the request body against schema and decodes it into
// out. Every failure is an INVALID_INPUT error.
func bindJSON(c *gin.Context, schema *validation.Schema, out interface{}) error {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		return apperrors.NewInvalidInputError("body", "Could not read request body")
	}

	res, err := schema.ValidateBytes(body)
	if err != nil {
		return apperrors.NewInvalidInputError("body", "Request body must be a JSON object")
	}
	if !res.Valid {
		first := res.FirstError()
		inputErr := apperrors.NewInvalidInputError(first.Field, "Invalid request: "+res.Summary())
		inputErr.Metadata["errors"] = res.Errors
		return inputErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.NewInvalidInputError("body", err.Error())
	}
	return nil
}
