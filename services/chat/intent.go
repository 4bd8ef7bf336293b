package chat

import (
	"strings"

	"bookassist/models"
)

// Intent is the classified purpose of a single user message.
type Intent string

const (
	IntentBookingStart         Intent = "booking_start"
	IntentBookingContinue      Intent = "booking_continue"
	IntentConfirmationResponse Intent = "confirmation_response"
	IntentQuery                Intent = "query"
)

// bookingTriggers are the strong phrases that start a booking. The list is
// deliberately narrow: questions about the process ("how do I book") must
// stay informational, so only explicit first-person requests qualify.
var bookingTriggers = []string{
	"i want to book",
	"i need to book",
	"i would like to book",
	"i'd like to book",
	"book a",
	"book an appointment",
	"make a booking",
	"make an appointment",
	"make a reservation",
	"schedule a",
	"reserve a",
	"can i book",
	"can i schedule",
}

// questionMarkers identify informational questions about booking that must
// not initiate a flow even when they contain a trigger phrase.
var questionMarkers = []string{
	"how do i",
	"how can i",
	"how does",
	"how to",
	"what is",
	"what are",
	"tell me about",
	"where can i",
}

// Classify decides what an inbound message means given the session state.
// It is pure: no state is mutated.
func Classify(message string, state *models.ConversationState) Intent {
	if state.AwaitingConfirmation() {
		return IntentConfirmationResponse
	}
	if state.Phase == models.PhaseCollecting {
		return IntentBookingContinue
	}

	lower := strings.ToLower(strings.TrimSpace(message))
	for _, marker := range questionMarkers {
		if strings.Contains(lower, marker) {
			return IntentQuery
		}
	}
	for _, trigger := range bookingTriggers {
		if strings.Contains(lower, trigger) {
			return IntentBookingStart
		}
	}
	return IntentQuery
}

// ConfirmationAnswer is the parsed meaning of a reply to the confirmation
// question.
type ConfirmationAnswer int

const (
	ConfirmationAmbiguous ConfirmationAnswer = iota
	ConfirmationAffirmative
	ConfirmationNegative
)

var affirmativeWords = []string{"yes", "confirm", "correct", "ok", "okay", "sure", "yep", "yeah"}

var negativeWords = []string{"no", "cancel", "stop", "restart", "nope"}

// ParseConfirmation classifies a confirmation-turn reply. Negative wins over
// affirmative so "no, not okay" is not mistaken for consent.
func ParseConfirmation(message string) ConfirmationAnswer {
	lower := strings.ToLower(strings.TrimSpace(message))
	for _, w := range negativeWords {
		if containsWord(lower, w) {
			return ConfirmationNegative
		}
	}
	for _, w := range affirmativeWords {
		if containsWord(lower, w) {
			return ConfirmationAffirmative
		}
	}
	return ConfirmationAmbiguous
}

// containsWord reports whether s contains w as a whole word.
func containsWord(s, w string) bool {
	for _, field := range strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if field == w {
			return true
		}
	}
	return false
}
