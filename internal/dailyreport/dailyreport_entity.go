package dailyreport

// DailyReportItem adalah satu baris detail laporan harian. Satu laporan
// (id_laporan) punya banyak baris yang dibedakan no_urut.
type DailyReportItem struct {
	IDLaporan  string  `gorm:"column:id_laporan;type:varchar(50);primaryKey"`
	NoUrut     int     `gorm:"column:no_urut;primaryKey;autoIncrement:false"`
	Nik        string  `gorm:"column:nik;type:varchar(20);not null"`
	Tanggal    string  `gorm:"column:tanggal;type:date;not null"`
	JamMulai   string  `gorm:"column:jam_mulai;type:varchar(5)"`
	JamSelesai *string `gorm:"column:jam_selesai;type:varchar(5)"`
	Aktivitas  string  `gorm:"column:aktivitas;type:text;not null"`
	Lokasi     *string `gorm:"column:lokasi;type:varchar(100)"`
	Keterangan *string `gorm:"column:keterangan;type:text"`
}

func (DailyReportItem) TableName() string {
	return "pers_data_laporan_harian"
}
