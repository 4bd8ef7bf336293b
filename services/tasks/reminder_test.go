package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"bookassist/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func TestNewReminderTaskPayloadRoundTrip(t *testing.T) {
	payload := ReminderPayload{
		BookingID:   "bk-1",
		Name:        "John Smith",
		Email:       "john@example.com",
		ServiceType: "Doctor Appointment",
		Date:        "2026-05-20",
		Time:        "14:30",
	}
	task, opts, err := NewReminderTask(payload, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("NewReminderTask failed: %v", err)
	}
	if task.Type() != TypeSendReminder {
		t.Fatalf("task type = %q", task.Type())
	}
	if len(opts) != 1 {
		t.Fatalf("expected one ProcessAt option, got %d", len(opts))
	}

	var decoded ReminderPayload
	if err := json.Unmarshal(task.Payload(), &decoded); err != nil {
		t.Fatalf("payload decode failed: %v", err)
	}
	if decoded != payload {
		t.Fatalf("decoded payload = %+v", decoded)
	}
}

func TestScheduleReminderSkipsNearAppointments(t *testing.T) {
	s := NewScheduler(asynq.RedisClientOpt{Addr: "localhost:0"}, "2006-01-02", "15:04", zap.NewNop())
	defer s.Close()

	// Appointment inside the lead window: nothing is enqueued, no error.
	soon := time.Now().Add(2 * time.Hour)
	booking := &models.Booking{
		ID:   "bk-2",
		Date: soon.Format("2006-01-02"),
		Time: soon.Format("15:04"),
	}
	if err := s.ScheduleReminder(booking); err != nil {
		t.Fatalf("near appointment should be skipped silently: %v", err)
	}
}

func TestScheduleReminderRejectsBadTimestamp(t *testing.T) {
	s := NewScheduler(asynq.RedisClientOpt{Addr: "localhost:0"}, "2006-01-02", "15:04", zap.NewNop())
	defer s.Close()

	booking := &models.Booking{ID: "bk-3", Date: "someday", Time: "noon"}
	if err := s.ScheduleReminder(booking); err == nil {
		t.Fatal("unparseable appointment should be an error")
	}
}
