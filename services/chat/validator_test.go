package chat

import (
	"strings"
	"testing"
	"time"

	"bookassist/models"
)

var testServices = []string{
	"Doctor Appointment",
	"Salon Service",
	"Spa Treatment",
}

func newTestValidator() *Validator {
	return NewValidator(testServices, 10, "2006-01-02", "15:04")
}

func testNow() time.Time {
	return time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
}

func TestValidateName(t *testing.T) {
	v := newTestValidator()
	now := testNow()

	got, err := v.Validate(models.FieldName, "  John Smith ", &models.BookingRecord{}, now)
	if err != nil {
		t.Fatalf("valid name rejected: %v", err)
	}
	if got != "John Smith" {
		t.Fatalf("expected trimmed name, got %q", got)
	}

	if _, err := v.Validate(models.FieldName, "John 2nd", &models.BookingRecord{}, now); err == nil {
		t.Fatal("name with digits should be rejected")
	}
	if _, err := v.Validate(models.FieldName, "  ", &models.BookingRecord{}, now); err == nil {
		t.Fatal("blank name should be rejected")
	}
}

func TestValidateEmail(t *testing.T) {
	v := newTestValidator()
	now := testNow()

	if _, err := v.Validate(models.FieldEmail, "john.doe@example.com", &models.BookingRecord{}, now); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
	for _, bad := range []string{"bob@@example.com", "bob@x", "not-an-email", "@example.com"} {
		if _, err := v.Validate(models.FieldEmail, bad, &models.BookingRecord{}, now); err == nil {
			t.Fatalf("invalid email %q accepted", bad)
		}
	}
}

func TestValidatePhoneStripsSeparators(t *testing.T) {
	v := newTestValidator()
	now := testNow()

	got, err := v.Validate(models.FieldPhone, "+1 (987) 654-3210", &models.BookingRecord{}, now)
	if err != nil {
		t.Fatalf("separated phone rejected: %v", err)
	}
	if got != "19876543210" {
		t.Fatalf("expected digits only, got %q", got)
	}

	if _, err := v.Validate(models.FieldPhone, "12345", &models.BookingRecord{}, now); err == nil {
		t.Fatal("short phone should be rejected")
	}
	if _, err := v.Validate(models.FieldPhone, "98765x43210", &models.BookingRecord{}, now); err == nil {
		t.Fatal("phone with letters should be rejected")
	}
}

func TestValidateServiceTypeCanonicalizes(t *testing.T) {
	v := newTestValidator()
	now := testNow()

	got, err := v.Validate(models.FieldServiceType, "spa treatment", &models.BookingRecord{}, now)
	if err != nil {
		t.Fatalf("known service rejected: %v", err)
	}
	if got != "Spa Treatment" {
		t.Fatalf("expected canonical casing, got %q", got)
	}

	if _, err := v.Validate(models.FieldServiceType, "Skydiving", &models.BookingRecord{}, now); err == nil {
		t.Fatal("unknown service should be rejected")
	}
}

func TestValidateDate(t *testing.T) {
	v := newTestValidator()
	now := testNow()

	for _, ok := range []string{"2026-03-14", "2026-03-15", "2027-01-01"} {
		if _, err := v.Validate(models.FieldDate, ok, &models.BookingRecord{}, now); err != nil {
			t.Fatalf("date %q should be accepted: %v", ok, err)
		}
	}

	_, err := v.Validate(models.FieldDate, "2026-03-12", &models.BookingRecord{}, now)
	if err == nil {
		t.Fatal("past date should be rejected")
	}
	if !strings.Contains(err.Error(), "2 day(s) in the past") {
		t.Fatalf("past-date error should report elapsed days, got %q", err.Error())
	}

	if _, err := v.Validate(models.FieldDate, "14/03/2026", &models.BookingRecord{}, now); err == nil {
		t.Fatal("malformed date should be rejected")
	}
}

func TestValidateTimeNormalization(t *testing.T) {
	v := newTestValidator()
	now := testNow()
	record := &models.BookingRecord{Date: "2026-04-01"}

	got, err := v.Validate(models.FieldTime, "1:0", record, now)
	if err != nil {
		t.Fatalf("lenient time rejected: %v", err)
	}
	if got != "01:00" {
		t.Fatalf("expected zero-padded time, got %q", got)
	}

	// Normalization is idempotent: feeding the output back yields itself.
	again, err := v.Validate(models.FieldTime, got, record, now)
	if err != nil {
		t.Fatalf("normalized time rejected on revalidation: %v", err)
	}
	if again != got {
		t.Fatalf("normalization not idempotent: %q became %q", got, again)
	}

	if _, err := v.Validate(models.FieldTime, "25:00", record, now); err == nil {
		t.Fatal("hour 25 should be rejected")
	}
	if _, err := v.Validate(models.FieldTime, "12:75", record, now); err == nil {
		t.Fatal("minute 75 should be rejected")
	}
	if _, err := v.Validate(models.FieldTime, "noonish", record, now); err == nil {
		t.Fatal("non-numeric time should be rejected")
	}
}

func TestValidateTimeTodayMustBeFuture(t *testing.T) {
	v := newTestValidator()
	now := testNow() // 10:00 local
	today := &models.BookingRecord{Date: now.Format("2006-01-02")}

	if _, err := v.Validate(models.FieldTime, "10:30", today, now); err != nil {
		t.Fatalf("future time today rejected: %v", err)
	}

	_, err := v.Validate(models.FieldTime, "08:30", today, now)
	if err == nil {
		t.Fatal("past time today should be rejected")
	}
	if !strings.Contains(err.Error(), "1h 30m past") {
		t.Fatalf("past-time error should report elapsed duration, got %q", err.Error())
	}

	// Exactly now is already gone.
	if _, err := v.Validate(models.FieldTime, "10:00", today, now); err == nil {
		t.Fatal("time equal to now should be rejected")
	}

	// Same clock time tomorrow is fine.
	tomorrow := &models.BookingRecord{Date: now.AddDate(0, 0, 1).Format("2006-01-02")}
	if _, err := v.Validate(models.FieldTime, "08:30", tomorrow, now); err != nil {
		t.Fatalf("past clock time on a future date rejected: %v", err)
	}
}

func TestValidateFinalRechecksAtConfirmation(t *testing.T) {
	v := newTestValidator()
	record := &models.BookingRecord{Date: "2026-03-14", Time: "10:30"}

	if err := v.ValidateFinal(record, testNow()); err != nil {
		t.Fatalf("still-future slot rejected: %v", err)
	}

	// The slot passes while the user hesitates.
	later := testNow().Add(45 * time.Minute)
	if err := v.ValidateFinal(record, later); err == nil {
		t.Fatal("slot in the past at confirmation should be rejected")
	}
}
