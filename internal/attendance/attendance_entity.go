package attendance

// AttendanceEvent adalah satu baris att_log. Skema tabel warisan mesin
// fingerprint, jadi semua kolom bertipe string.
type AttendanceEvent struct {
	DeviceSerial string `gorm:"column:sn"`
	ScanDate     string `gorm:"column:scan_date"`
	Pin          string `gorm:"column:pin"`
	VerifyMode   string `gorm:"column:verifymode"`
	InOutMode    string `gorm:"column:inoutmode"`
	Reserved     string `gorm:"column:reserved"`
	WorkCode     string `gorm:"column:work_code"`
	AttID        string `gorm:"column:att_id"`
	Coordinate   string `gorm:"column:coordinate"`
	Image        string `gorm:"column:image"`
}

func (AttendanceEvent) TableName() string {
	return "att_log"
}

// HistoryRow is one attendance day aggregated from att_log.
type HistoryRow struct {
	Pin       string `gorm:"column:pin"`
	TglMasuk  string `gorm:"column:tgl_masuk"`
	JamMasuk  string `gorm:"column:jam_masuk"`
	JamPulang string `gorm:"column:jam_pulang"`
}

type Direction int

const (
	DirectionIn Direction = iota
	DirectionOut
)

// Code is the inoutmode value stored in att_log.
func (d Direction) Code() string {
	if d == DirectionOut {
		return "0"
	}
	return "1"
}

func (d Direction) String() string {
	if d == DirectionOut {
		return "out"
	}
	return "in"
}
