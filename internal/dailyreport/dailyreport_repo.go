package dailyreport

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=dailyreport_repo.go -destination=mock/dailyreport_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByID(ctx context.Context, idLaporan string, limit int) ([]DailyReportItem, error)
	LockNoUrut(ctx context.Context, idLaporan string) ([]int, error)
	Create(ctx context.Context, item *DailyReportItem) error
	DeleteItem(ctx context.Context, idLaporan string, noUrut int) (int64, error)
	DeleteByID(ctx context.Context, idLaporan string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn mengarahkan query gorm ke *sql.Tx milik service bila ada.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) FindByID(ctx context.Context, idLaporan string, limit int) ([]DailyReportItem, error) {
	var rows []DailyReportItem
	err := r.conn(ctx).
		Where("id_laporan = ?", idLaporan).
		Order("no_urut ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// LockNoUrut membaca no_urut yang ada dengan SELECT ... FOR UPDATE.
func (r *repository) LockNoUrut(ctx context.Context, idLaporan string) ([]int, error) {
	var nums []int
	err := r.conn(ctx).
		Model(&DailyReportItem{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id_laporan = ?", idLaporan).
		Pluck("no_urut", &nums).Error
	return nums, err
}

func (r *repository) Create(ctx context.Context, item *DailyReportItem) error {
	return r.conn(ctx).Create(item).Error
}

func (r *repository) DeleteItem(ctx context.Context, idLaporan string, noUrut int) (int64, error) {
	res := r.conn(ctx).
		Where("id_laporan = ? AND no_urut = ?", idLaporan, noUrut).
		Delete(&DailyReportItem{})
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteByID(ctx context.Context, idLaporan string) (int64, error) {
	res := r.conn(ctx).
		Where("id_laporan = ?", idLaporan).
		Delete(&DailyReportItem{})
	return res.RowsAffected, res.Error
}
