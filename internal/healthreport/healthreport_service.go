package healthreport

import (
	"context"
	"strings"

	healthreporterrors "github.com/riooastfu/pastimobile-be/internal/healthreport/errors"
	"github.com/riooastfu/pastimobile-be/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	historyLimit = 10
	nikWidth     = 10
)

//go:generate mockgen -source=healthreport_service.go -destination=mock/healthreport_service_mock.go -package=mock
type Service interface {
	GetByNIK(ctx context.Context, nik string) ([]HealthReportResponse, error)
	GetByID(ctx context.Context, idLaporan string) (HealthReportResponse, error)
	GetByDate(ctx context.Context, req SearchByDateRequest) ([]HealthReportResponse, error)
	Create(ctx context.Context, req CreateHealthReportRequest) (HealthReportResponse, error)
	DeleteByID(ctx context.Context, idLaporan string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("healthreport.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("healthreport.service")
	}
	return &service{repo: repo, logger: l}
}

// ReportID: NIK dipad nol kiri sampai 10 digit, lalu "_" + tanggal.
func ReportID(nik, tanggal string) string {
	if n := nikWidth - len(nik); n > 0 {
		nik = strings.Repeat("0", n) + nik
	}
	return nik + "_" + tanggal
}

func (s *service) GetByNIK(ctx context.Context, nik string) ([]HealthReportResponse, error) {
	nik = strings.TrimSpace(nik)
	if nik == "" {
		return nil, healthreporterrors.ErrMissingNik
	}

	rows, err := s.repo.FindByNik(ctx, nik, historyLimit)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, healthreporterrors.ErrReportNotFound
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, idLaporan string) (HealthReportResponse, error) {
	idLaporan = strings.TrimSpace(idLaporan)
	if idLaporan == "" {
		return HealthReportResponse{}, healthreporterrors.ErrMissingID
	}

	row, err := s.repo.FindByID(ctx, idLaporan)
	if err != nil {
		return HealthReportResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) GetByDate(ctx context.Context, req SearchByDateRequest) ([]HealthReportResponse, error) {
	nik := strings.TrimSpace(req.Nik)
	tanggal := strings.TrimSpace(req.Tanggal)
	if nik == "" || tanggal == "" {
		return nil, healthreporterrors.ErrMissingNikTanggal
	}

	rows, err := s.repo.FindByNikAndDate(ctx, nik, tanggal)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, healthreporterrors.ErrReportNotFound
	}
	return mapToListResponse(rows), nil
}

func (s *service) Create(ctx context.Context, req CreateHealthReportRequest) (HealthReportResponse, error) {
	row := &HealthReport{
		IDLaporan:  ReportID(req.Nik, req.Tanggal),
		Nik:        req.Nik,
		Tanggal:    req.Tanggal,
		SuhuTubuh:  req.SuhuTubuh,
		Kondisi:    req.Kondisi,
		Keluhan:    req.Keluhan,
		Keterangan: req.Keterangan,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("create health report failed",
			zap.String("id_laporan", row.IDLaporan),
			zap.Error(err),
		)
		return HealthReportResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) DeleteByID(ctx context.Context, idLaporan string) error {
	idLaporan = strings.TrimSpace(idLaporan)
	if idLaporan == "" {
		return healthreporterrors.ErrMissingID
	}

	n, err := s.repo.DeleteByID(ctx, idLaporan)
	if err != nil {
		return err
	}
	if n == 0 {
		return healthreporterrors.ErrDeleteNotFound
	}
	return nil
}

func mapToResponse(r HealthReport) HealthReportResponse {
	return HealthReportResponse{
		IDLaporan:  r.IDLaporan,
		Nik:        r.Nik,
		Tanggal:    r.Tanggal,
		SuhuTubuh:  r.SuhuTubuh,
		Kondisi:    r.Kondisi,
		Keluhan:    r.Keluhan,
		Keterangan: r.Keterangan,
	}
}

func mapToListResponse(rows []HealthReport) []HealthReportResponse {
	res := make([]HealthReportResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
