package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/riooastfu/pastimobile-be/internal/bootstrap"
	"github.com/riooastfu/pastimobile-be/internal/config"
	"github.com/riooastfu/pastimobile-be/internal/events"
	"github.com/riooastfu/pastimobile-be/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const attendanceAuditGroup = "pastimobile-attendance-audit"

// RunConsumer membaca event absensi dan menuliskannya ke audit log sampai SIGINT/SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.AttendanceRecordedTopic,
		GroupID:        attendanceAuditGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeAttendanceRecorded(ctx, reader, bootstrap.NewStdoutAuditLogger(), logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
