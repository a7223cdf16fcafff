package dto

import "time"

// APIResponse is the standard success envelope.
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewAPIResponse wraps data in the standard envelope.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data, Timestamp: time.Now()}
}

// NewMessageResponse wraps a bare message in the standard envelope.
func NewMessageResponse(message string) APIResponse {
	return APIResponse{Success: true, Message: message, Timestamp: time.Now()}
}
