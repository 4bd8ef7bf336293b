package chat

import (
	"context"
	"errors"
	"testing"

	"bookassist/models"
)

func newTestExtractor() *Extractor {
	return &Extractor{ServiceTypes: testServices}
}

func TestExtractMultipleFieldsFromOneMessage(t *testing.T) {
	e := newTestExtractor()
	record := &models.BookingRecord{}

	msg := "I'm john.doe@example.com, call 9876543210, see you 2026-05-20 at 14:30"
	extracted, _ := e.Extract(context.Background(), msg, record, false)

	want := map[string]string{
		models.FieldEmail: "john.doe@example.com",
		models.FieldPhone: "9876543210",
		models.FieldDate:  "2026-05-20",
		models.FieldTime:  "14:30",
	}
	for field, value := range want {
		if extracted[field] != value {
			t.Fatalf("field %s: got %q, want %q", field, extracted[field], value)
		}
	}
	if _, ok := extracted[models.FieldName]; ok {
		t.Fatal("message with other fields must not be treated as a name")
	}
}

func TestExtractDoesNotOverwriteAcceptedFields(t *testing.T) {
	e := newTestExtractor()
	record := &models.BookingRecord{Email: "kept@example.com"}

	extracted, _ := e.Extract(context.Background(), "new@example.com", record, false)
	if _, ok := extracted[models.FieldEmail]; ok {
		t.Fatal("accepted email must not be re-extracted without overwrite")
	}

	extracted, _ = e.Extract(context.Background(), "new@example.com", record, true)
	if extracted[models.FieldEmail] != "new@example.com" {
		t.Fatal("overwrite mode should re-extract the restated email")
	}
}

func TestExtractServiceTypeByKeyword(t *testing.T) {
	e := newTestExtractor()

	cases := map[string]string{
		"I need a haircut":           "Salon Service",
		"something for my checkup":   "Doctor Appointment",
		"book me a relaxing massage": "Spa Treatment",
		"I'd like the spa treatment": "Spa Treatment",
	}
	for msg, want := range cases {
		extracted, _ := e.Extract(context.Background(), msg, &models.BookingRecord{}, false)
		if extracted[models.FieldServiceType] != want {
			t.Fatalf("message %q: got service %q, want %q", msg, extracted[models.FieldServiceType], want)
		}
	}
}

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(context.Context, string) (string, error) {
	return s.reply, s.err
}

func TestExtractServiceTypeFallsBackToLLM(t *testing.T) {
	e := newTestExtractor()
	e.LLM = &stubCompleter{reply: "Doctor Appointment"}

	extracted, notes := e.Extract(context.Background(), "my knee hurts, I should see someone", &models.BookingRecord{}, false)
	if extracted[models.FieldServiceType] != "Doctor Appointment" {
		t.Fatalf("got service %q, want model-resolved Doctor Appointment", extracted[models.FieldServiceType])
	}
	if len(notes) == 0 {
		t.Fatal("model-resolved service should carry a note")
	}
}

func TestExtractLLMFailureYieldsNothing(t *testing.T) {
	e := newTestExtractor()
	e.LLM = &stubCompleter{err: errors.New("model offline")}

	extracted, _ := e.Extract(context.Background(), "my knee hurts, I should see someone", &models.BookingRecord{}, false)
	if _, ok := extracted[models.FieldServiceType]; ok {
		t.Fatal("model failure must not produce a service type")
	}
}

func TestExtractNameHeuristic(t *testing.T) {
	e := newTestExtractor()

	extracted, _ := e.Extract(context.Background(), "john smith", &models.BookingRecord{}, false)
	if extracted[models.FieldName] != "John Smith" {
		t.Fatalf("got name %q, want title-cased John Smith", extracted[models.FieldName])
	}

	for _, notName := range []string{
		"I want to book something",
		"hello there",
		"my number is 9876543210",
		"a very long rambling message that goes on about nothing in particular at all",
	} {
		extracted, _ := e.Extract(context.Background(), notName, &models.BookingRecord{}, false)
		if _, ok := extracted[models.FieldName]; ok {
			t.Fatalf("message %q wrongly treated as a name", notName)
		}
	}
}
