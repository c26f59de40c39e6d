package dto

import "skillgap-analyzer/internal/common/validation"

// Envelope wraps every successful response.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// List is OK with a count of items.
func List(data interface{}, count int) Envelope {
	return Envelope{Success: true, Count: &count, Data: data}
}

type ErrorResponse struct {
	Success    bool                         `json:"success"`
	Message    string                       `json:"message"`
	Code       string                       `json:"code"`
	Details    string                       `json:"details,omitempty"`
	Path       string                       `json:"path,omitempty"`
	ValidRoles []string                     `json:"validRoles,omitempty"`
	Errors     []validation.ValidationError `json:"errors,omitempty"`
	RequestID  string                       `json:"requestId,omitempty"`
}

type ServiceInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
