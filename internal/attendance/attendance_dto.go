package attendance

import "mime/multipart"

// CheckRequest adalah field form multipart check-in/check-out.
type CheckRequest struct {
	Pin        string `form:"pin" binding:"required,max=32"`
	ScanDate   string `form:"scan_date" binding:"required"`
	Coordinate string `form:"coordinate" binding:"required,max=100"`
}

type Submission struct {
	Form    CheckRequest
	Image   *multipart.FileHeader
	BaseURL string // scheme://host dari request, dipakai store lokal
}

type AttendanceResponse struct {
	DeviceSerial string `json:"sn"`
	ScanDate     string `json:"scan_date"`
	Pin          string `json:"pin"`
	VerifyMode   string `json:"verifymode"`
	InOutMode    string `json:"inoutmode"`
	AttID        string `json:"att_id"`
	Coordinate   string `json:"coordinate"`
	Image        string `json:"image"`
}

type HistoryResponse struct {
	Pin       string `json:"pin"`
	TglMasuk  string `json:"tgl_masuk"`
	JamMasuk  string `json:"jam_masuk"`
	JamPulang string `json:"jam_pulang"`
}
