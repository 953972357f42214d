package healthreport

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=healthreport_repo.go -destination=mock/healthreport_repo_mock.go -package=mock
type Repository interface {
	FindByNik(ctx context.Context, nik string, limit int) ([]HealthReport, error)
	FindByID(ctx context.Context, idLaporan string) (*HealthReport, error)
	FindByNikAndDate(ctx context.Context, nik, tanggal string) ([]HealthReport, error)
	Create(ctx context.Context, r *HealthReport) error
	DeleteByID(ctx context.Context, idLaporan string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByNik(ctx context.Context, nik string, limit int) ([]HealthReport, error) {
	var rows []HealthReport
	err := r.db.WithContext(ctx).
		Where("nik = ?", nik).
		Order("tanggal DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, idLaporan string) (*HealthReport, error) {
	var row HealthReport
	err := r.db.WithContext(ctx).
		Where("id_laporan = ?", idLaporan).
		First(&row).Error
	return &row, err
}

func (r *repository) FindByNikAndDate(ctx context.Context, nik, tanggal string) ([]HealthReport, error) {
	var rows []HealthReport
	err := r.db.WithContext(ctx).
		Where("nik = ? AND tanggal = ?", nik, tanggal).
		Find(&rows).Error
	return rows, err
}

func (r *repository) Create(ctx context.Context, row *HealthReport) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) DeleteByID(ctx context.Context, idLaporan string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id_laporan = ?", idLaporan).
		Delete(&HealthReport{})
	return res.RowsAffected, res.Error
}
