package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "PROVIDER_UNAVAILABLE"
	Details string `json:"details"` // Detailed error description
}

// Response is the unified envelope the delivery layer uses for error
// rendering outside of handler control (echo HTTPErrorHandler).
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
