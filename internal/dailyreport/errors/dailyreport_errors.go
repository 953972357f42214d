package dailyreporterrors

import (
	"net/http"

	"github.com/riooastfu/pastimobile-be/internal/shared/apperror"
)

var (
	ErrReportNotFound = apperror.New(
		"LAPORAN_NOT_FOUND",
		"Laporan harian tidak ditemukan.",
		http.StatusNotFound,
	)
	ErrItemNotFound = apperror.New(
		"LAPORAN_DETAIL_NOT_FOUND",
		"Detail laporan tidak ditemukan.",
		http.StatusNotFound,
	)
	ErrMissingDeleteParams = apperror.New(
		"MISSING_DELETE_BODY_PARAMS",
		"Field id_laporan dan no_urut dibutuhkan dalam body request.",
		http.StatusBadRequest,
	)
	ErrDuplicateEntry = apperror.New(
		"DUPLICATE_ENTRY",
		"Gagal menambahkan data: Kombinasi data sudah ada (cek unique constraints).",
		http.StatusConflict,
	)
)

var ErrMissingID = apperror.MissingParameter("Parameter id_laporan dibutuhkan di URL.")
