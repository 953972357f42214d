package healthreporterrors

import (
	"net/http"

	"github.com/riooastfu/pastimobile-be/internal/shared/apperror"
)

var (
	ErrReportNotFound = apperror.New(
		"LAPORAN_KESEHATAN_NOT_FOUND",
		"Laporan kesehatan tidak ditemukan.",
		http.StatusNotFound,
	)
	// delete memakai kode yang berbeda dari read, dipertahankan untuk klien lama
	ErrDeleteNotFound = apperror.New(
		"LAPORAN_KES_NOT_FOUND",
		"Laporan kesehatan tidak ditemukan.",
		http.StatusNotFound,
	)
	ErrMissingNikTanggal = apperror.New(
		"MISSING_NIK_TANGGAL_BODY",
		"Field NIK dan Tanggal dibutuhkan dalam body request.",
		http.StatusBadRequest,
	)
	ErrDuplicateReport = apperror.New(
		"DUPLICATE_LAPKES",
		"Laporan untuk Tanggal tersebut mungkin sudah ada.",
		http.StatusConflict,
	)
)

var (
	ErrMissingID  = apperror.MissingParameter("Parameter id_laporan dibutuhkan di URL.")
	ErrMissingNik = apperror.MissingParameter("Parameter NIK dibutuhkan di URL.")
)
