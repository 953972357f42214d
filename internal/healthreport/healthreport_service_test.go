package healthreport_test

import (
	"context"
	"errors"
	"testing"

	"github.com/riooastfu/pastimobile-be/internal/healthreport"
	healthreporterrors "github.com/riooastfu/pastimobile-be/internal/healthreport/errors"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeHealthReportRepository struct {
	findByNikFn        func(ctx context.Context, nik string, limit int) ([]healthreport.HealthReport, error)
	findByIDFn         func(ctx context.Context, idLaporan string) (*healthreport.HealthReport, error)
	findByNikAndDateFn func(ctx context.Context, nik, tanggal string) ([]healthreport.HealthReport, error)
	createFn           func(ctx context.Context, r *healthreport.HealthReport) error
	deleteByIDFn       func(ctx context.Context, idLaporan string) (int64, error)
}

func (f *fakeHealthReportRepository) FindByNik(ctx context.Context, nik string, limit int) ([]healthreport.HealthReport, error) {
	if f.findByNikFn != nil {
		return f.findByNikFn(ctx, nik, limit)
	}
	return nil, nil
}

func (f *fakeHealthReportRepository) FindByID(ctx context.Context, idLaporan string) (*healthreport.HealthReport, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, idLaporan)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeHealthReportRepository) FindByNikAndDate(ctx context.Context, nik, tanggal string) ([]healthreport.HealthReport, error) {
	if f.findByNikAndDateFn != nil {
		return f.findByNikAndDateFn(ctx, nik, tanggal)
	}
	return nil, nil
}

func (f *fakeHealthReportRepository) Create(ctx context.Context, r *healthreport.HealthReport) error {
	if f.createFn != nil {
		return f.createFn(ctx, r)
	}
	return nil
}

func (f *fakeHealthReportRepository) DeleteByID(ctx context.Context, idLaporan string) (int64, error) {
	if f.deleteByIDFn != nil {
		return f.deleteByIDFn(ctx, idLaporan)
	}
	return 0, nil
}

func TestReportID(t *testing.T) {
	assert.Equal(t, "0000000123_2026-10-15", healthreport.ReportID("123", "2026-10-15"))
	assert.Equal(t, "12345678901_2026-10-15", healthreport.ReportID("12345678901", "2026-10-15"))
}

func TestHealthReportService_GetByNIK(t *testing.T) {
	ctx := context.Background()

	t.Run("limits to ten rows", func(t *testing.T) {
		repo := &fakeHealthReportRepository{
			findByNikFn: func(ctx context.Context, nik string, limit int) ([]healthreport.HealthReport, error) {
				assert.Equal(t, "00123", nik)
				assert.Equal(t, 10, limit)
				return []healthreport.HealthReport{{IDLaporan: "0000000123_2026-10-15", Nik: nik, Kondisi: "SEHAT"}}, nil
			},
		}
		res, err := healthreport.NewService(repo).GetByNIK(ctx, "00123")
		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("empty result is not found", func(t *testing.T) {
		_, err := healthreport.NewService(&fakeHealthReportRepository{}).GetByNIK(ctx, "00123")
		assert.ErrorIs(t, err, healthreporterrors.ErrReportNotFound)
	})

	t.Run("blank nik", func(t *testing.T) {
		_, err := healthreport.NewService(&fakeHealthReportRepository{}).GetByNIK(ctx, " ")
		assert.ErrorIs(t, err, healthreporterrors.ErrMissingNik)
	})
}

func TestHealthReportService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := &fakeHealthReportRepository{
			findByIDFn: func(ctx context.Context, idLaporan string) (*healthreport.HealthReport, error) {
				return &healthreport.HealthReport{IDLaporan: idLaporan, Kondisi: "SAKIT"}, nil
			},
		}
		res, err := healthreport.NewService(repo).GetByID(ctx, "X_2026-10-15")
		assert.NoError(t, err)
		assert.Equal(t, "SAKIT", res.Kondisi)
	})

	t.Run("record not found", func(t *testing.T) {
		_, err := healthreport.NewService(&fakeHealthReportRepository{}).GetByID(ctx, "nope")
		assert.ErrorIs(t, err, healthreporterrors.ErrReportNotFound)
	})
}

func TestHealthReportService_GetByDate(t *testing.T) {
	ctx := context.Background()

	t.Run("missing tanggal", func(t *testing.T) {
		_, err := healthreport.NewService(&fakeHealthReportRepository{}).
			GetByDate(ctx, healthreport.SearchByDateRequest{Nik: "00123"})
		assert.ErrorIs(t, err, healthreporterrors.ErrMissingNikTanggal)
	})

	t.Run("no rows", func(t *testing.T) {
		_, err := healthreport.NewService(&fakeHealthReportRepository{}).
			GetByDate(ctx, healthreport.SearchByDateRequest{Nik: "00123", Tanggal: "2026-10-15"})
		assert.ErrorIs(t, err, healthreporterrors.ErrReportNotFound)
	})

	t.Run("rows", func(t *testing.T) {
		repo := &fakeHealthReportRepository{
			findByNikAndDateFn: func(ctx context.Context, nik, tanggal string) ([]healthreport.HealthReport, error) {
				assert.Equal(t, "2026-10-15", tanggal)
				return []healthreport.HealthReport{{Nik: nik, Tanggal: tanggal}}, nil
			},
		}
		res, err := healthreport.NewService(repo).
			GetByDate(ctx, healthreport.SearchByDateRequest{Nik: "00123", Tanggal: "2026-10-15"})
		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})
}

func TestHealthReportService_Create(t *testing.T) {
	ctx := context.Background()
	req := healthreport.CreateHealthReportRequest{Nik: "123", Tanggal: "2026-10-15", Kondisi: "SEHAT"}

	t.Run("builds padded id", func(t *testing.T) {
		repo := &fakeHealthReportRepository{
			createFn: func(ctx context.Context, r *healthreport.HealthReport) error {
				assert.Equal(t, "0000000123_2026-10-15", r.IDLaporan)
				return nil
			},
		}
		res, err := healthreport.NewService(repo).Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "0000000123_2026-10-15", res.IDLaporan)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := &fakeHealthReportRepository{
			createFn: func(ctx context.Context, r *healthreport.HealthReport) error {
				return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
			},
		}
		_, err := healthreport.NewService(repo).Create(ctx, req)
		assert.ErrorIs(t, err, healthreporterrors.ErrDuplicateReport)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("connection reset")
		repo := &fakeHealthReportRepository{
			createFn: func(ctx context.Context, r *healthreport.HealthReport) error { return boom },
		}
		_, err := healthreport.NewService(repo).Create(ctx, req)
		assert.ErrorIs(t, err, boom)
	})
}

func TestHealthReportService_DeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing deleted", func(t *testing.T) {
		err := healthreport.NewService(&fakeHealthReportRepository{}).DeleteByID(ctx, "X")
		assert.ErrorIs(t, err, healthreporterrors.ErrDeleteNotFound)
	})

	t.Run("deleted", func(t *testing.T) {
		repo := &fakeHealthReportRepository{
			deleteByIDFn: func(ctx context.Context, idLaporan string) (int64, error) { return 1, nil },
		}
		assert.NoError(t, healthreport.NewService(repo).DeleteByID(ctx, "X"))
	})

	t.Run("blank id", func(t *testing.T) {
		err := healthreport.NewService(&fakeHealthReportRepository{}).DeleteByID(ctx, "")
		assert.ErrorIs(t, err, healthreporterrors.ErrMissingID)
	})
}
