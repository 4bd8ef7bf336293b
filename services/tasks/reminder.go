package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"bookassist/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

// ReminderPayload is the queued task body for one booking reminder.
type ReminderPayload struct {
	BookingID   string `json:"bookingId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	ServiceType string `json:"serviceType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// reminderLead is how far ahead of the appointment the reminder fires.
const reminderLead = 24 * time.Hour

func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues reminder tasks for confirmed bookings.
type Scheduler struct {
	client     *asynq.Client
	dateLayout string
	timeLayout string
	logger     *zap.Logger
}

func NewScheduler(redisOpts asynq.RedisClientOpt, dateLayout, timeLayout string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		client:     asynq.NewClient(redisOpts),
		dateLayout: dateLayout,
		timeLayout: timeLayout,
		logger:     logger,
	}
}

// ScheduleReminder queues an email reminder 24 hours before the appointment.
// Bookings closer than the lead time get no reminder.
func (s *Scheduler) ScheduleReminder(booking *models.Booking) error {
	at, err := time.ParseInLocation(s.dateLayout+" "+s.timeLayout, booking.Date+" "+booking.Time, time.Local)
	if err != nil {
		return fmt.Errorf("invalid appointment timestamp for booking %s: %w", booking.ID, err)
	}

	fireAt := at.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		s.logger.Debug("appointment too soon for reminder", zap.String("bookingID", booking.ID))
		return nil
	}

	payload := ReminderPayload{
		BookingID:   booking.ID,
		Name:        booking.Name,
		Email:       booking.Email,
		ServiceType: booking.ServiceType,
		Date:        booking.Date,
		Time:        booking.Time,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	info, err := s.client.Enqueue(task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}

	s.logger.Info("reminder scheduled",
		zap.String("bookingID", booking.ID),
		zap.String("taskID", info.ID),
		zap.Time("fireAt", fireAt))
	return nil
}

// Close releases the queue connection.
func (s *Scheduler) Close() error {
	return s.client.Close()
}
