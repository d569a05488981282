package errors

// ErrorResponse is the body rendered for every failed request.
type ErrorResponse struct {
	Name       string `json:"name"`              // Kind-derived error name, e.g. "NotFoundError"
	Message    string `json:"message"`           // User-friendly error message
	Action     string `json:"action"`            // Remediation hint
	StatusCode int    `json:"status_code"`       // HTTP status code
	Code       string `json:"code,omitempty"`    // Business error code, e.g. "USER_NOT_FOUND"
	Details    string `json:"details,omitempty"` // Detailed error information (optional)
}

// NewErrorResponse renders an AppError.
func NewErrorResponse(appErr AppError) *ErrorResponse {
	return &ErrorResponse{
		Name:       string(appErr.Kind()) + "Error",
		Message:    appErr.Message(),
		Action:     appErr.Action(),
		StatusCode: appErr.HTTPCode(),
		Code:       appErr.ErrorCode(),
	}
}
