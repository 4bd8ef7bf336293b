package tasks

import (
	"context"
	"encoding/json"
	"time"

	"bookassist/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderSender delivers the reminder once the task fires.
type ReminderSender interface {
	SendReminder(ctx context.Context, booking *models.Booking) error
}

// StartReminderWorker runs the async reminder worker in the background,
// retrying startup with backoff before giving up.
func StartReminderWorker(redisOpts asynq.RedisClientOpt, sender ReminderSender, logger *zap.Logger) {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSendReminder, handleReminderTask(sender, logger))

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("reminder worker exhausted startup attempts")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(sender ReminderSender, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		logger.Info("sending reminder",
			zap.String("bookingID", p.BookingID), zap.String("email", p.Email))

		booking := &models.Booking{
			ID:          p.BookingID,
			Name:        p.Name,
			Email:       p.Email,
			ServiceType: p.ServiceType,
			Date:        p.Date,
			Time:        p.Time,
		}
		if err := sender.SendReminder(ctx, booking); err != nil {
			logger.Error("reminder delivery failed",
				zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
