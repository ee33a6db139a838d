package dto

import "time"

// ErrorResponse is the uniform error envelope returned by every endpoint
// on failure. Success is always false and Data always null so that
// clients can rely on one shape regardless of which endpoint failed.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success      bool      `json:"success" example:"false"`
	Data         any       `json:"data"`
	Message      string    `json:"message" example:"無効な期間が指定されました: invalid（有効な期間: 7d, 1m, 3m）"`
	ErrorDetails string    `json:"error,omitempty" example:"invalid period"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse from a human-readable message
// and an optional inner error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Success:   false,
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error list.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
