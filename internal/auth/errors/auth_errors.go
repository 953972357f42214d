package autherrors

import (
	"net/http"

	"github.com/riooastfu/pastimobile-be/internal/shared/apperror"
)

var (
	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"Token tidak ditemukan.",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Token tidak valid.",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Sesi telah berakhir, silakan login kembali.",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Anda tidak memiliki akses ke resource ini.",
		http.StatusForbidden,
	)
)
