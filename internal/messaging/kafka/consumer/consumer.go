package consumer

import (
	"context"
	"encoding/json"

	"github.com/riooastfu/pastimobile-be/internal/bootstrap"
	"github.com/riooastfu/pastimobile-be/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeAttendanceRecorded menulis setiap event absensi ke audit log.
// Blocks until ctx is cancelled.
func ConsumeAttendanceRecorded(
	ctx context.Context,
	reader messageReader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_recorded")
	log.Info("attendance recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance recorded consumer stopped")
				return
			}
			log.Error("fetch attendance message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance_recorded event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  "ATTENDANCE_RECORDED",
			Message: "Attendance recorded from mobile",
			Meta: map[string]any{
				"event_id":   event.EventID,
				"request_id": event.RequestID,
				"att_id":     event.AttID,
				"pin":        event.Pin,
				"direction":  event.Direction,
				"scan_date":  event.ScanDate,
				"coordinate": event.Coordinate,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance message failed", zap.Error(err))
			continue
		}
	}
}
