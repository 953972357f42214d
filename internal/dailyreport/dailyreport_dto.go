package dailyreport

type CreateDailyReportRequest struct {
	IDLaporan  string  `json:"id_laporan" binding:"required,max=50"`
	Nik        string  `json:"nik" binding:"required,max=20"`
	Tanggal    string  `json:"tanggal" binding:"required,datetime=2006-01-02"`
	JamMulai   string  `json:"jam_mulai" binding:"required,datetime=15:04"`
	JamSelesai *string `json:"jam_selesai" binding:"omitempty,datetime=15:04"`
	Aktivitas  string  `json:"aktivitas" binding:"required,max=1000"`
	Lokasi     *string `json:"lokasi" binding:"omitempty,max=100"`
	Keterangan *string `json:"keterangan" binding:"omitempty,max=1000"`
}

// DeleteItemRequest: no_urut pointer agar nilai 0 tetap valid.
type DeleteItemRequest struct {
	IDLaporan string `json:"id_laporan"`
	NoUrut    *int   `json:"no_urut"`
}

type DailyReportResponse struct {
	IDLaporan  string  `json:"id_laporan"`
	NoUrut     int     `json:"no_urut"`
	Nik        string  `json:"nik"`
	Tanggal    string  `json:"tanggal"`
	JamMulai   string  `json:"jam_mulai"`
	JamSelesai *string `json:"jam_selesai"`
	Aktivitas  string  `json:"aktivitas"`
	Lokasi     *string `json:"lokasi"`
	Keterangan *string `json:"keterangan"`
}

type DeleteResult struct {
	IDLaporan string `json:"id_laporan"`
	Deleted   int64  `json:"deleted"`
}
