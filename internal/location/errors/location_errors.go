package locationerrors

import (
	"net/http"

	"github.com/riooastfu/pastimobile-be/internal/shared/apperror"
)

var (
	ErrRoleMissing = apperror.New(
		"UNAUTHENTICATED_OR_ROLE_MISSING",
		"Informasi pengguna atau peran tidak ditemukan.",
		http.StatusUnauthorized,
	)
	ErrRadiusNotFound = apperror.New(
		"RADIUS_NOT_FOUND",
		"Radius absen untuk peran ini tidak ditemukan.",
		http.StatusNotFound,
	)
)
