package events

import "time"

const (
	AttendanceRecordedTopic = "hr.attendance.recorded.v1"
	AttendanceRecordedType  = "attendance.recorded"
)

// AttendanceRecordedEvent dikirim setelah satu baris att_log tersimpan.
type AttendanceRecordedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	AttID      string    `json:"att_id"`
	Pin        string    `json:"pin"`
	Direction  string    `json:"direction"`
	ScanDate   string    `json:"scan_date"`
	Coordinate string    `json:"coordinate"`
	Image      string    `json:"image"`
	OccurredAt time.Time `json:"occurred_at"`
}
