package chat

import (
	"context"
	"strings"
	"time"

	"bookassist/models"

	"go.uber.org/zap"
)

// BookingStore is the storage collaborator contract: upsert the customer by
// email and insert the booking atomically.
type BookingStore interface {
	CreateBooking(ctx context.Context, record models.BookingRecord) (*models.Booking, error)
}

// Notifier is the notification collaborator contract. Invoked only after
// successful persistence; failures are reported but never retried here.
type Notifier interface {
	SendConfirmation(ctx context.Context, booking *models.Booking) error
}

// ReminderScheduler enqueues a deferred reminder for a confirmed booking.
type ReminderScheduler interface {
	ScheduleReminder(booking *models.Booking) error
}

// maxClarifyAttempts bounds consecutive ambiguous confirmation replies
// before the session is cancelled instead of looping forever.
const maxClarifyAttempts = 3

// cancelPhrases end a booking conversation outright while collecting.
var cancelPhrases = []string{"cancel", "cancel booking", "stop", "never mind", "nevermind", "forget it"}

// Result is the outcome of one processed booking-flow message.
type Result struct {
	Reply     string
	BookingID string
}

// Flow drives the booking state machine across turns: it merges extracted
// fields into the session record, asks for what is missing, presents the
// confirmation summary, and finalizes on affirmation.
type Flow struct {
	Validator *Validator
	Extractor *Extractor
	Catalog   models.ServiceCatalog
	Store     BookingStore
	Notifier  Notifier
	Reminders ReminderScheduler
	Logger    *zap.Logger

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (f *Flow) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// Start transitions an idle session into collection and processes the
// initiating message, which may already carry fields.
func (f *Flow) Start(ctx context.Context, state *models.ConversationState, message string) *Result {
	state.Phase = models.PhaseCollecting
	state.Record = models.BookingRecord{}
	state.ClarifyCount = 0
	return f.Collect(ctx, state, message)
}

// Collect processes one message while the record is still incomplete:
// extract, validate per field, merge, then either re-prompt or move to
// confirmation.
func (f *Flow) Collect(ctx context.Context, state *models.ConversationState, message string) *Result {
	if isCancelMessage(message) {
		state.Reset()
		return &Result{Reply: "No problem, I've cancelled that booking. Just say 'I want to book' whenever you're ready!"}
	}

	// Restating an already-accepted value is only honored after the user
	// declined the confirmation summary; during normal collection accepted
	// fields are immutable.
	overwrite := state.Record.Complete()
	extracted, notes := f.Extractor.Extract(ctx, message, &state.Record, overwrite)
	for _, note := range notes {
		f.Logger.Debug("low-confidence extraction", zap.String("session", state.SessionID), zap.String("note", note))
	}

	now := f.now()
	var errs []*ValidationError
	for _, field := range models.RequiredFields {
		raw, ok := extracted[field]
		if !ok {
			continue
		}
		normalized, err := f.Validator.Validate(field, raw, &state.Record, now)
		if err != nil {
			if verr, isValidation := err.(*ValidationError); isValidation {
				errs = append(errs, verr)
				continue
			}
			f.Logger.Error("field validation failed unexpectedly", zap.String("field", field), zap.Error(err))
			continue
		}
		state.Record.Set(field, normalized)
	}

	// Price follows the accepted service type automatically.
	if state.Record.ServiceType != "" && state.Record.Price == "" {
		if _, info, ok := f.Catalog.Lookup(state.Record.ServiceType); ok {
			state.Record.Price = info.PriceLabel()
		}
	}

	if len(errs) > 0 {
		return &Result{Reply: validationErrorReply(errs)}
	}

	missing := state.Record.Missing()
	if len(missing) > 0 {
		if len(missing) == len(models.RequiredFields) {
			return &Result{Reply: "Great! Let's make a booking. What's your name?"}
		}
		return &Result{Reply: collectedSummary(&state.Record) + f.promptFor(missing[0], now)}
	}

	state.Phase = models.PhaseAwaitingConfirmation
	state.ClarifyCount = 0
	return &Result{Reply: f.confirmationSummary(&state.Record)}
}

// Confirm handles the reply to the confirmation summary.
func (f *Flow) Confirm(ctx context.Context, state *models.ConversationState, message string) *Result {
	switch ParseConfirmation(message) {
	case ConfirmationAffirmative:
		return f.finalize(ctx, state)

	case ConfirmationNegative:
		state.Phase = models.PhaseCollecting
		state.ClarifyCount = 0
		if isCancelMessage(message) {
			state.Reset()
			return &Result{Reply: "No problem, I've cancelled that booking. Just say 'I want to book' whenever you're ready!"}
		}
		// The decline may carry the corrected value already.
		if extracted, _ := f.Extractor.Extract(ctx, message, &state.Record, true); len(extracted) > 0 {
			return f.Collect(ctx, state, message)
		}
		return &Result{Reply: "Okay, what would you like to change? You can restate any detail, e.g. a new date or time."}

	default:
		state.ClarifyCount++
		if state.ClarifyCount > maxClarifyAttempts {
			state.Reset()
			return &Result{Reply: "I couldn't get a clear answer, so I've cancelled this booking. Say 'I want to book' to start again."}
		}
		return &Result{Reply: "Please reply 'yes' to confirm or 'no' to make changes."}
	}
}

// finalize re-checks temporal validity, persists the booking, and triggers
// notification. Persistence failure leaves the session awaiting confirmation
// so a repeated "yes" retries the identical record.
func (f *Flow) finalize(ctx context.Context, state *models.ConversationState) *Result {
	now := f.now()
	if err := f.Validator.ValidateFinal(&state.Record, now); err != nil {
		verr := err.(*ValidationError)
		// Time moved past the chosen slot between turns; collect it again.
		state.Record.Set(verr.Field, "")
		state.Phase = models.PhaseCollecting
		return &Result{Reply: validationErrorReply([]*ValidationError{verr})}
	}

	booking, err := f.Store.CreateBooking(ctx, state.Record)
	if err != nil {
		f.Logger.Error("booking persistence failed",
			zap.String("session", state.SessionID), zap.Error(err))
		return &Result{Reply: "❌ Sorry, I couldn't save your booking just now. Nothing was lost — reply 'yes' to try again."}
	}

	if err := f.Notifier.SendConfirmation(ctx, booking); err != nil {
		// The booking stands; email failure is reported, never rolled back.
		f.Logger.Warn("confirmation email failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
	if f.Reminders != nil {
		if err := f.Reminders.ScheduleReminder(booking); err != nil {
			f.Logger.Warn("reminder scheduling failed",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	reply := f.confirmedReply(booking.ID, &state.Record)
	state.Reset()
	return &Result{Reply: reply, BookingID: booking.ID}
}

func isCancelMessage(message string) bool {
	lower := strings.ToLower(strings.TrimSpace(message))
	for _, p := range cancelPhrases {
		if lower == p {
			return true
		}
	}
	return false
}
