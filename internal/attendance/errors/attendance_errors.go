package attendanceerrors

import (
	"net/http"

	"github.com/riooastfu/pastimobile-be/internal/shared/apperror"
)

const CodeAttendanceDuplicate = "ATTENDANCE_DUPLICATE"

var (
	ErrTimeMismatch = apperror.New(
		apperror.CodeTimeMismatch,
		"Waktu perangkat tidak sesuai dengan waktu server.",
		http.StatusBadRequest,
	)
	ErrAttendanceDuplicate = apperror.New(
		CodeAttendanceDuplicate,
		"Absensi dengan waktu scan yang sama sudah tercatat.",
		http.StatusConflict,
	)
	ErrPhotoDecode = apperror.New(
		apperror.CodeInvalidFile,
		"File gambar tidak dapat diproses.",
		http.StatusBadRequest,
	)
)

var ErrMissingPin = apperror.MissingParameter("Parameter pin wajib diisi.")

// ScanDateInvalid dipakai saat scan_date lolos validator tapi tidak bisa diparse.
func ScanDateInvalid() *apperror.AppError {
	return apperror.FieldError("scan_date", "Scan Date must be a valid date time")
}
