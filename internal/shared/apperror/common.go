package apperror

import "net/http"

var (
	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)
)

// MissingParameter dipakai untuk path/body field yang kosong.
func MissingParameter(message string) *AppError {
	return New(CodeMissingParameter, message, http.StatusBadRequest)
}
