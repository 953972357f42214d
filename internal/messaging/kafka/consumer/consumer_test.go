package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/riooastfu/pastimobile-be/internal/bootstrap"
	"github.com/riooastfu/pastimobile-be/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.msgs) == 0 {
		f.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := f.msgs[0]
	f.msgs = f.msgs[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	f.committed = append(f.committed, msgs...)
	return nil
}

type recordingAudit struct {
	entries []bootstrap.AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	r.entries = append(r.entries, entry)
}

func TestConsumeAttendanceRecorded(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, err := json.Marshal(events.AttendanceRecordedEvent{
		EventID:   "e-1",
		EventType: events.AttendanceRecordedType,
		AttID:     "15102026083005MOBILE00123",
		Pin:       "00123",
		Direction: "in",
	})
	assert.NoError(t, err)

	reader := &fakeReader{
		msgs: []kafkago.Message{
			{Value: []byte("{broken")},
			{Value: payload},
		},
		cancel: cancel,
	}
	audit := &recordingAudit{}

	ConsumeAttendanceRecorded(ctx, reader, audit, zap.NewNop())

	assert.Len(t, reader.committed, 2)
	if assert.Len(t, audit.entries, 1) {
		assert.Equal(t, "ATTENDANCE_RECORDED", audit.entries[0].Action)
		assert.Equal(t, "00123", audit.entries[0].Meta["pin"])
		assert.Equal(t, "15102026083005MOBILE00123", audit.entries[0].Meta["att_id"])
	}
	assert.True(t, errors.Is(ctx.Err(), context.Canceled))
}
