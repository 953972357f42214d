package apperror

const (
	// Client errors (4xx)
	CodeValidation       = "VALIDATION_ERROR"
	CodeMissingParameter = "MISSING_PARAMETER"
	CodeInvalidFile      = "INVALID_FILE"
	CodeTimeMismatch     = "TIME_MISMATCH"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeTooManyRequests  = "TOO_MANY_REQUESTS"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
