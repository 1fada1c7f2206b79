package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// endpoint of the API surface.
//
// It also implements the error interface so middleware can pass it around
// as a regular error value.
type ErrorResponse struct {
	Message      string    `json:"message" example:"symbol not found: AAPLX"` // Human-readable error summary
	ErrorDetails string    `json:"error,omitempty" example:"http 404"`        // Underlying error detail, if any
	Timestamp    time.Time `json:"timestamp"`                                 // When the error response was built
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
