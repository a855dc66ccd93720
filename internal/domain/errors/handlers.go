package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "INSUFFICIENT_BALANCE"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response defines the unified envelope rendered by the error middleware.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
