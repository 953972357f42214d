package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	attendanceerrors "github.com/riooastfu/pastimobile-be/internal/attendance/errors"
	"github.com/riooastfu/pastimobile-be/internal/events"
	"github.com/riooastfu/pastimobile-be/internal/messaging/kafka"
	"github.com/riooastfu/pastimobile-be/internal/photo"
	"github.com/riooastfu/pastimobile-be/internal/shared/apperror"
	"github.com/riooastfu/pastimobile-be/internal/shared/contextutil"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	deviceSerialMobile = "Mobile"
	verifyModeMobile   = "20"
	attIDTag           = "MOBILE"

	// ScanDateLayout is how scan_date is stored in att_log (server-local).
	ScanDateLayout = "2006-01-02 15:04:05"

	MaxClockSkew = 2 * time.Minute

	historyLimit    = 10
	historyCacheTTL = 5 * time.Minute

	HistoryKeyPrefix = "attendance:history:"
)

func GetHistoryKey(pin string) string {
	return HistoryKeyPrefix + pin
}

// scan_date dari aplikasi mobile tidak selalu seragam formatnya.
var scanDateLayouts = []string{
	time.RFC3339Nano,
	ScanDateLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, sub Submission) (AttendanceResponse, error)
	CheckOut(ctx context.Context, sub Submission) (AttendanceResponse, error)
	Record(ctx context.Context, dir Direction, sub Submission) (AttendanceResponse, error)
	GetHistory(ctx context.Context, pin string) ([]HistoryResponse, error)
}

type Config struct {
	MaxUploadBytes int64
	MaxImageDim    int
	Transcode      photo.TranscodeOptions
	Location       *time.Location
	Now            func() time.Time
}

type service struct {
	repo       Repository
	store      photo.Store
	transcoder *photo.Transcoder
	publisher  kafka.Publisher
	rdb        *redis.Client
	sf         *singleflight.Group
	maxUpload  int64
	maxDim     int
	loc        *time.Location
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(
	repo Repository,
	store photo.Store,
	publisher kafka.Publisher,
	rdb *redis.Client,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if publisher == nil {
		publisher = kafka.NoopPublisher{}
	}
	if cfg.Transcode.MaxWidth == 0 {
		cfg.Transcode = photo.DefaultTranscodeOptions()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &service{
		repo:       repo,
		store:      store,
		transcoder: photo.NewTranscoder(cfg.Transcode),
		publisher:  publisher,
		rdb:        rdb,
		sf:         &singleflight.Group{},
		maxUpload:  cfg.MaxUploadBytes,
		maxDim:     cfg.MaxImageDim,
		loc:        cfg.Location,
		now:        cfg.Now,
		logger:     l,
	}
}

func (s *service) CheckIn(ctx context.Context, sub Submission) (AttendanceResponse, error) {
	return s.Record(ctx, DirectionIn, sub)
}

func (s *service) CheckOut(ctx context.Context, sub Submission) (AttendanceResponse, error) {
	return s.Record(ctx, DirectionOut, sub)
}

func (s *service) Record(ctx context.Context, dir Direction, sub Submission) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if err := s.store.Ensure(ctx); err != nil {
		log.Error("ensure photo store failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	upload, err := photo.ValidateImageFile(sub.Image, s.maxUpload, s.maxDim)
	if err != nil {
		return AttendanceResponse{}, err
	}

	if err := binding.Validator.ValidateStruct(sub.Form); err != nil {
		return AttendanceResponse{}, apperror.MapValidationError(err)
	}

	scanTime, err := s.parseScanDate(sub.Form.ScanDate)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ScanDateInvalid()
	}

	if skew := s.now().Sub(scanTime); skew > MaxClockSkew || skew < -MaxClockSkew {
		log.Warn("attendance rejected, clock skew",
			zap.String("pin", sub.Form.Pin),
			zap.String("scan_date", sub.Form.ScanDate),
			zap.Duration("skew", skew),
		)
		return AttendanceResponse{}, attendanceerrors.ErrTimeMismatch
	}

	filename := photo.DeriveFilename(scanTime, upload.Filename)
	data, contentType, err := s.transcoder.Transcode(upload.Data, filename)
	if err != nil {
		log.Warn("transcode photo failed", zap.String("filename", filename), zap.Error(err))
		return AttendanceResponse{}, attendanceerrors.ErrPhotoDecode
	}
	if err := s.store.Save(ctx, filename, data, contentType); err != nil {
		log.Error("save photo failed", zap.String("filename", filename), zap.Error(err))
		return AttendanceResponse{}, err
	}

	ev := &AttendanceEvent{
		DeviceSerial: deviceSerialMobile,
		ScanDate:     scanTime.Format(ScanDateLayout),
		Pin:          sub.Form.Pin,
		VerifyMode:   verifyModeMobile,
		InOutMode:    dir.Code(),
		AttID:        scanTime.Format(photo.ScanStampLayout) + attIDTag + sub.Form.Pin,
		Coordinate:   sub.Form.Coordinate,
		Image:        s.store.PublicURL(sub.BaseURL, filename),
	}

	if err := s.repo.Insert(ctx, ev); err != nil {
		log.Error("insert att_log failed", zap.String("att_id", ev.AttID), zap.Error(err))
		if delErr := s.store.Delete(ctx, filename); delErr != nil {
			log.Error("remove orphan photo failed", zap.String("filename", filename), zap.Error(delErr))
		}
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.invalidateHistory(ctx, ev.Pin)
	s.publishRecorded(ctx, dir, ev)

	log.Info("attendance recorded",
		zap.String("att_id", ev.AttID),
		zap.String("direction", dir.String()),
	)

	return mapToResponse(*ev), nil
}

func (s *service) GetHistory(ctx context.Context, pin string) ([]HistoryResponse, error) {
	if pin == "" {
		return nil, attendanceerrors.ErrMissingPin
	}

	cacheKey := GetHistoryKey(pin)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var resp []HistoryResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("read history cache failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	// Hasil dibagi ke semua pemanggil, jadi pembatalan satu request tidak
	// boleh menggagalkan yang lain.
	fctx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindHistory(fctx, pin, historyLimit)
		if err != nil {
			return nil, err
		}

		resp := mapToHistoryResponse(rows)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(fctx, cacheKey, jsonData, historyCacheTTL).Err(); err != nil {
					s.logger.Warn("write history cache failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]HistoryResponse), nil
}

func (s *service) parseScanDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range scanDateLayouts {
		t, err := time.ParseInLocation(layout, raw, s.loc)
		if err == nil {
			return t.In(s.loc), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func (s *service) invalidateHistory(ctx context.Context, pin string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetHistoryKey(pin)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate history cache", zap.String("key", cacheKey), zap.Error(err))
	}
}

// publishRecorded bersifat best effort; kegagalan broker tidak membatalkan absensi.
func (s *service) publishRecorded(ctx context.Context, dir Direction, ev *AttendanceEvent) {
	rid := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.AttendanceRecordedEvent{
		EventID:    uuid.New().String(),
		EventType:  events.AttendanceRecordedType,
		RequestID:  rid,
		AttID:      ev.AttID,
		Pin:        ev.Pin,
		Direction:  dir.String(),
		ScanDate:   ev.ScanDate,
		Coordinate: ev.Coordinate,
		Image:      ev.Image,
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return
	}

	err = s.publisher.Publish(ctx, kafka.Event{
		Topic:     events.AttendanceRecordedTopic,
		Key:       ev.Pin,
		EventType: events.AttendanceRecordedType,
		RequestID: rid,
		Payload:   payload,
	})
	if err != nil {
		s.logger.Warn("publish attendance event failed",
			zap.String("request_id", rid),
			zap.String("att_id", ev.AttID),
			zap.Error(err),
		)
	}
}

func mapToResponse(ev AttendanceEvent) AttendanceResponse {
	return AttendanceResponse{
		DeviceSerial: ev.DeviceSerial,
		ScanDate:     ev.ScanDate,
		Pin:          ev.Pin,
		VerifyMode:   ev.VerifyMode,
		InOutMode:    ev.InOutMode,
		AttID:        ev.AttID,
		Coordinate:   ev.Coordinate,
		Image:        ev.Image,
	}
}

func mapToHistoryResponse(rows []HistoryRow) []HistoryResponse {
	res := make([]HistoryResponse, len(rows))
	for i, r := range rows {
		res[i] = HistoryResponse{
			Pin:       r.Pin,
			TglMasuk:  truncate(r.TglMasuk, len("2006-01-02")),
			JamMasuk:  truncate(r.JamMasuk, len("15:04:05")),
			JamPulang: truncate(r.JamPulang, len("15:04:05")),
		}
	}
	return res
}

// driver postgres mengembalikan DATE sebagai timestamp RFC3339.
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
