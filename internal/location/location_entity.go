package location

// RoleLocationMap memetakan role aplikasi ke titik absen (auth_role_ht).
type RoleLocationMap struct {
	IDRole    string              `gorm:"column:id_role;primaryKey"`
	Locations []MasterLokasiAbsen `gorm:"foreignKey:IDRole;references:IDRole"`
}

func (RoleLocationMap) TableName() string {
	return "auth_role_ht"
}

type MasterLokasiAbsen struct {
	IDRole     string  `gorm:"column:id_role"`
	Tikor      string  `gorm:"column:tikor"`
	NamaLokasi string  `gorm:"column:nama_lokasi"`
	Radius     float64 `gorm:"column:radius"`
}

func (MasterLokasiAbsen) TableName() string {
	return "master_lokasi_absen"
}

type PersLokasi struct {
	Kode   string `gorm:"column:kode;type:varchar(8);primaryKey"`
	Lokasi string `gorm:"column:lokasi;type:varchar(55)"`
	Aktif  int    `gorm:"column:aktif;default:1"`
	NoUrut *int   `gorm:"column:no_urut"`
}

func (PersLokasi) TableName() string {
	return "pers_lokasi"
}
