package attendance

import (
	"context"

	"gorm.io/gorm"
)

const insertAttLogSQL = `INSERT INTO att_log (sn, scan_date, pin, verifymode, inoutmode, reserved, work_code, att_id, coordinate, image) VALUES (?, ?, ?, ?, ?, '', '', ?, ?, ?)`

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, ev *AttendanceEvent) error
	FindHistory(ctx context.Context, pin string, limit int) ([]HistoryRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Insert menulis satu baris att_log. reserved dan work_code selalu ''.
func (r *repository) Insert(ctx context.Context, ev *AttendanceEvent) error {
	return r.db.WithContext(ctx).Exec(insertAttLogSQL,
		ev.DeviceSerial,
		ev.ScanDate,
		ev.Pin,
		ev.VerifyMode,
		ev.InOutMode,
		ev.AttID,
		ev.Coordinate,
		ev.Image,
	).Error
}

func (r *repository) FindHistory(ctx context.Context, pin string, limit int) ([]HistoryRow, error) {
	var rows []HistoryRow
	err := r.db.WithContext(ctx).
		Table(AttendanceEvent{}.TableName()).
		Select("pin, CAST(scan_date AS DATE) AS tgl_masuk, MIN(CAST(scan_date AS TIME)) AS jam_masuk, MAX(CAST(scan_date AS TIME)) AS jam_pulang").
		Where("pin = ?", pin).
		Group("pin, CAST(scan_date AS DATE)").
		Order("tgl_masuk DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
