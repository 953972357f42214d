package healthreport

type CreateHealthReportRequest struct {
	Nik        string   `json:"nik" binding:"required,max=20"`
	Tanggal    string   `json:"tanggal" binding:"required,datetime=2006-01-02"`
	SuhuTubuh  *float64 `json:"suhu_tubuh" binding:"omitempty,gte=30,lte=45"`
	Kondisi    string   `json:"kondisi" binding:"required,oneof=SEHAT SAKIT ISOLASI"`
	Keluhan    *string  `json:"keluhan" binding:"omitempty,max=1000"`
	Keterangan *string  `json:"keterangan" binding:"omitempty,max=1000"`
}

type SearchByDateRequest struct {
	Nik     string `json:"nik"`
	Tanggal string `json:"tanggal"`
}

type HealthReportResponse struct {
	IDLaporan  string   `json:"id_laporan"`
	Nik        string   `json:"nik"`
	Tanggal    string   `json:"tanggal"`
	SuhuTubuh  *float64 `json:"suhu_tubuh"`
	Kondisi    string   `json:"kondisi"`
	Keluhan    *string  `json:"keluhan"`
	Keterangan *string  `json:"keterangan"`
}
