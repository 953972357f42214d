package healthreport

type HealthReport struct {
	IDLaporan  string   `gorm:"column:id_laporan;type:varchar(32);primaryKey"`
	Nik        string   `gorm:"column:nik;type:varchar(20);not null;index"`
	Tanggal    string   `gorm:"column:tanggal;type:date;not null"`
	SuhuTubuh  *float64 `gorm:"column:suhu_tubuh"`
	Kondisi    string   `gorm:"column:kondisi;type:varchar(20);not null"`
	Keluhan    *string  `gorm:"column:keluhan;type:text"`
	Keterangan *string  `gorm:"column:keterangan;type:text"`
}

func (HealthReport) TableName() string {
	return "pers_data_laporan_kesehatan"
}
