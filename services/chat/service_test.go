package chat

import (
	"context"
	"strings"
	"testing"

	"bookassist/models"

	"go.uber.org/zap"
)

func newTestService(store *fakeStore, notifier *fakeNotifier) *Service {
	return NewService(NewMemorySessionStore(), newTestFlow(store, notifier), nil, zap.NewNop(), 25)
}

func TestHandleMessageProcessQuestionDoesNotStartBooking(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeNotifier{})

	reply, err := svc.HandleMessage(context.Background(), "s1", "How do I make an appointment?")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if reply.Phase != models.PhaseIdle {
		t.Fatalf("process question moved phase to %v", reply.Phase)
	}
	if strings.Contains(reply.Reply, "What's your name?") {
		t.Fatal("process question must not begin field collection")
	}
}

func TestHandleMessageGreetingFastPath(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeNotifier{})

	reply, err := svc.HandleMessage(context.Background(), "s2", "hello")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if !strings.Contains(reply.Reply, "booking assistant") {
		t.Fatalf("expected greeting, got %q", reply.Reply)
	}
}

func TestHandleMessageConversationPersistsAcrossTurns(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &fakeNotifier{})
	ctx := context.Background()

	turns := []string{
		"I want to book a doctor appointment",
		"John Smith",
		"john.smith@example.com",
		"9876543210",
		"2026-05-20",
		"14:30",
		"yes",
	}
	var last *models.ChatReply
	for _, msg := range turns {
		var err error
		last, err = svc.HandleMessage(ctx, "s3", msg)
		if err != nil {
			t.Fatalf("turn %q failed: %v", msg, err)
		}
	}

	if last.BookingID == "" {
		t.Fatal("final turn should carry the booking ID")
	}
	if last.Phase != models.PhaseIdle {
		t.Fatalf("phase after confirmation = %v", last.Phase)
	}
	if len(store.bookings) != 1 {
		t.Fatalf("persisted bookings = %d", len(store.bookings))
	}

	// Both sides of every turn are in the history window.
	state, err := svc.Sessions.Get(ctx, "s3")
	if err != nil {
		t.Fatalf("session load failed: %v", err)
	}
	if len(state.History) != len(turns)*2 {
		t.Fatalf("history length = %d, want %d", len(state.History), len(turns)*2)
	}
}

func TestHandleMessageFallbackWithoutAnswerer(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeNotifier{})

	reply, err := svc.HandleMessage(context.Background(), "s4", "Do you open on Sundays?")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if !strings.Contains(reply.Reply, "I can help you book") {
		t.Fatalf("expected fallback reply, got %q", reply.Reply)
	}
}
