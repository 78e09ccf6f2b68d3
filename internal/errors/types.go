package errors

// represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`             // user-facing message
	Code    string `json:"code"`              // machine-readable code (e.g., "forbidden")
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// standard error codes
const (
	CodeForbidden        = "forbidden"
	CodeBadRequest       = "bad_request"
	CodeMissingTenant    = "missing_tenant"
	CodeServerError      = "server_error"
	CodeGenerationFailed = "generation_failed"
	CodeTooManyRequests  = "too_many_requests"
)
