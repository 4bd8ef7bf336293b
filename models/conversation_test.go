package models

import (
	"fmt"
	"testing"
)

func TestPushTurnBoundedWindow(t *testing.T) {
	state := NewConversationState("s1")
	const max = 25

	for i := 0; i < 30; i++ {
		state.PushTurn("user", fmt.Sprintf("msg-%d", i), max)
	}

	if len(state.History) != max {
		t.Fatalf("history length = %d, want %d", len(state.History), max)
	}
	if state.History[0].Content != "msg-5" {
		t.Fatalf("oldest retained turn = %q, want msg-5", state.History[0].Content)
	}
	if state.History[max-1].Content != "msg-29" {
		t.Fatalf("newest turn = %q, want msg-29", state.History[max-1].Content)
	}
}

func TestResetClearsRecordAndPhase(t *testing.T) {
	state := NewConversationState("s2")
	state.Phase = PhaseAwaitingConfirmation
	state.Record.Name = "John"
	state.ClarifyCount = 2
	state.PushTurn("user", "hello", 25)

	state.Reset()

	if state.Phase != PhaseIdle {
		t.Fatalf("phase after reset = %v", state.Phase)
	}
	if state.Record.HasAny() {
		t.Fatal("record should be empty after reset")
	}
	if state.ClarifyCount != 0 {
		t.Fatal("clarify count should be zeroed")
	}
	// History survives a reset; only the booking in progress is discarded.
	if len(state.History) != 1 {
		t.Fatal("history must not be discarded on reset")
	}
}

func TestRecordMissingInCanonicalOrder(t *testing.T) {
	r := BookingRecord{Email: "a@b.co", Date: "2026-01-01"}

	missing := r.Missing()
	want := []string{FieldName, FieldPhone, FieldServiceType, FieldTime}
	if len(missing) != len(want) {
		t.Fatalf("missing = %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Fatalf("missing[%d] = %q, want %q", i, missing[i], want[i])
		}
	}
	if r.Complete() {
		t.Fatal("partial record reported complete")
	}

	r.Name, r.Phone, r.ServiceType, r.Time = "A", "1234567890", "Consultation", "09:00"
	if !r.Complete() {
		t.Fatal("full record reported incomplete")
	}
}
