package chat

import (
	"testing"

	"bookassist/models"
)

func TestClassifyIdleSession(t *testing.T) {
	idle := models.NewConversationState("s1")

	cases := []struct {
		message string
		want    Intent
	}{
		{"I want to book a doctor appointment", IntentBookingStart},
		{"Can I schedule a haircut?", IntentBookingStart},
		{"Make a reservation for dinner", IntentBookingStart},
		{"How do I make an appointment?", IntentQuery},
		{"How can I book a spa treatment?", IntentQuery},
		{"What is the price of a consultation?", IntentQuery},
		{"Tell me about your services", IntentQuery},
		{"Do you open on Sundays?", IntentQuery},
	}
	for _, tc := range cases {
		if got := Classify(tc.message, idle); got != tc.want {
			t.Fatalf("Classify(%q) = %v, want %v", tc.message, got, tc.want)
		}
	}
}

func TestClassifyFollowsSessionPhase(t *testing.T) {
	collecting := models.NewConversationState("s2")
	collecting.Phase = models.PhaseCollecting
	if got := Classify("John Smith", collecting); got != IntentBookingContinue {
		t.Fatalf("mid-collection message classified as %v", got)
	}
	// Even question-shaped messages continue the flow while collecting.
	if got := Classify("what is this for?", collecting); got != IntentBookingContinue {
		t.Fatalf("question during collection classified as %v", got)
	}

	awaiting := models.NewConversationState("s3")
	awaiting.Phase = models.PhaseAwaitingConfirmation
	if got := Classify("yes", awaiting); got != IntentConfirmationResponse {
		t.Fatalf("confirmation reply classified as %v", got)
	}
}

func TestParseConfirmation(t *testing.T) {
	cases := []struct {
		message string
		want    ConfirmationAnswer
	}{
		{"yes", ConfirmationAffirmative},
		{"Yes!", ConfirmationAffirmative},
		{"ok sure", ConfirmationAffirmative},
		{"confirm", ConfirmationAffirmative},
		{"no", ConfirmationNegative},
		{"nope, change it", ConfirmationNegative},
		{"cancel", ConfirmationNegative},
		{"no, not okay", ConfirmationNegative},
		{"maybe", ConfirmationAmbiguous},
		{"what?", ConfirmationAmbiguous},
		{"", ConfirmationAmbiguous},
	}
	for _, tc := range cases {
		if got := ParseConfirmation(tc.message); got != tc.want {
			t.Fatalf("ParseConfirmation(%q) = %v, want %v", tc.message, got, tc.want)
		}
	}
}

func TestContainsWordMatchesWholeWordsOnly(t *testing.T) {
	if containsWord("nothing to see", "no") {
		t.Fatal("'nothing' must not match the word 'no'")
	}
	if !containsWord("no thanks", "no") {
		t.Fatal("'no thanks' should match the word 'no'")
	}
}
