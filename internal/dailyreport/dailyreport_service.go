package dailyreport

import (
	"context"
	"database/sql"
	"strings"

	dailyreporterrors "github.com/riooastfu/pastimobile-be/internal/dailyreport/errors"
	"github.com/riooastfu/pastimobile-be/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Aplikasi mobile hanya menampilkan 4 detail pertama per laporan.
const maxItemsPerReport = 4

//go:generate mockgen -source=dailyreport_service.go -destination=mock/dailyreport_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, idLaporan string) ([]DailyReportResponse, error)
	Create(ctx context.Context, req CreateDailyReportRequest) (DailyReportResponse, error)
	DeleteItem(ctx context.Context, req DeleteItemRequest) error
	DeleteByID(ctx context.Context, idLaporan string) (DeleteResult, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dailyreport.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dailyreport.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, idLaporan string) ([]DailyReportResponse, error) {
	idLaporan = strings.TrimSpace(idLaporan)
	if idLaporan == "" {
		return nil, dailyreporterrors.ErrMissingID
	}

	rows, err := s.repo.FindByID(ctx, idLaporan, maxItemsPerReport)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, dailyreporterrors.ErrReportNotFound
	}

	res := make([]DailyReportResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, req CreateDailyReportRequest) (DailyReportResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create daily report begin tx failed", zap.Error(err))
		return DailyReportResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.LockNoUrut(ctx, req.IDLaporan)
	if err != nil {
		return DailyReportResponse{}, err
	}

	item := &DailyReportItem{
		IDLaporan:  req.IDLaporan,
		NoUrut:     NextNoUrut(existing),
		Nik:        req.Nik,
		Tanggal:    req.Tanggal,
		JamMulai:   req.JamMulai,
		JamSelesai: req.JamSelesai,
		Aktivitas:  req.Aktivitas,
		Lokasi:     req.Lokasi,
		Keterangan: req.Keterangan,
	}

	if err := qtx.Create(ctx, item); err != nil {
		log.Warn("create daily report persist failed",
			zap.String("id_laporan", item.IDLaporan),
			zap.Int("no_urut", item.NoUrut),
			zap.Error(err),
		)
		return DailyReportResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DailyReportResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*item), nil
}

func (s *service) DeleteItem(ctx context.Context, req DeleteItemRequest) error {
	idLaporan := strings.TrimSpace(req.IDLaporan)
	if idLaporan == "" || req.NoUrut == nil {
		return dailyreporterrors.ErrMissingDeleteParams
	}

	n, err := s.repo.DeleteItem(ctx, idLaporan, *req.NoUrut)
	if err != nil {
		return err
	}
	if n == 0 {
		return dailyreporterrors.ErrItemNotFound
	}
	return nil
}

// DeleteByID menghapus semua detail; 0 baris bukan error.
func (s *service) DeleteByID(ctx context.Context, idLaporan string) (DeleteResult, error) {
	idLaporan = strings.TrimSpace(idLaporan)
	if idLaporan == "" {
		return DeleteResult{}, dailyreporterrors.ErrMissingID
	}

	n, err := s.repo.DeleteByID(ctx, idLaporan)
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{IDLaporan: idLaporan, Deleted: n}, nil
}

// NextNoUrut returns max(existing)+1, or 0 for a report without items.
func NextNoUrut(existing []int) int {
	if len(existing) == 0 {
		return 0
	}
	maxNo := existing[0]
	for _, n := range existing[1:] {
		if n > maxNo {
			maxNo = n
		}
	}
	return maxNo + 1
}

func mapToResponse(r DailyReportItem) DailyReportResponse {
	return DailyReportResponse{
		IDLaporan:  r.IDLaporan,
		NoUrut:     r.NoUrut,
		Nik:        r.Nik,
		Tanggal:    r.Tanggal,
		JamMulai:   r.JamMulai,
		JamSelesai: r.JamSelesai,
		Aktivitas:  r.Aktivitas,
		Lokasi:     r.Lokasi,
		Keterangan: r.Keterangan,
	}
}
