package chat

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"bookassist/models"
)

var (
	emailExtractPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneExtractPattern = regexp.MustCompile(`\b\d{10,15}\b`)
	dateExtractPattern  = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	timeExtractPattern  = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
)

// serviceKeywords maps canonical service types to trigger words users
// actually say. Keyword matching runs before any model call so the common
// path stays deterministic and free.
var serviceKeywords = map[string][]string{
	"Doctor Appointment":     {"doctor", "medical", "physician", "healthcare", "clinic", "checkup"},
	"Salon Service":          {"salon", "haircut", "hair", "beauty", "manicure", "pedicure", "styling"},
	"Hotel Reservation":      {"hotel", "room", "accommodation", "resort", "lodge"},
	"Event Booking":          {"event", "party", "celebration", "wedding", "conference"},
	"Fitness Class":          {"fitness", "gym", "workout", "exercise", "yoga", "training"},
	"Restaurant Reservation": {"restaurant", "dining", "dinner", "lunch", "table"},
	"Travel Booking":         {"travel", "trip", "tour", "vacation", "flight", "journey"},
	"Spa Treatment":          {"spa", "massage", "therapy", "relaxation", "wellness"},
	"Consultation":           {"consult", "advice", "guidance", "counseling"},
}

// Completer is the narrow LLM collaborator contract; it must be treated as
// slow and unreliable, so every call carries a timeout.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Extractor turns free-form user text into a partial set of booking fields.
// It never overwrites an already-accepted field unless the caller explicitly
// allows restatement, and it degrades to an empty result when nothing new
// can be found.
type Extractor struct {
	ServiceTypes []string
	LLM          Completer // optional; nil disables model-assisted extraction
	LLMTimeout   time.Duration
}

// Extract returns the raw values the message plausibly supplies for fields
// still unset on record (all fields, when overwrite is true), plus notes on
// how low-confidence values were obtained.
func (e *Extractor) Extract(ctx context.Context, message string, record *models.BookingRecord, overwrite bool) (map[string]string, []string) {
	extracted := make(map[string]string)
	var notes []string

	wants := func(field string) bool {
		return overwrite || !record.Has(field)
	}

	if wants(models.FieldEmail) {
		if m := emailExtractPattern.FindString(message); m != "" {
			extracted[models.FieldEmail] = m
		}
	}
	if wants(models.FieldPhone) {
		if m := phoneExtractPattern.FindString(message); m != "" {
			extracted[models.FieldPhone] = m
		}
	}
	if wants(models.FieldDate) {
		if m := dateExtractPattern.FindString(message); m != "" {
			extracted[models.FieldDate] = m
		}
	}
	if wants(models.FieldTime) {
		if m := timeExtractPattern.FindString(message); m != "" {
			extracted[models.FieldTime] = m
		}
	}
	if wants(models.FieldServiceType) {
		if svc, note := e.extractServiceType(ctx, message); svc != "" {
			extracted[models.FieldServiceType] = svc
			if note != "" {
				notes = append(notes, note)
			}
		}
	}
	// A message that already yielded another field is not a bare name.
	if wants(models.FieldName) && !record.Has(models.FieldName) && len(extracted) == 0 {
		if name := extractName(message); name != "" {
			extracted[models.FieldName] = name
			notes = append(notes, "name inferred from short free-text message")
		}
	}

	return extracted, notes
}

func (e *Extractor) extractServiceType(ctx context.Context, message string) (string, string) {
	lower := strings.ToLower(message)
	for _, svc := range e.ServiceTypes {
		if strings.Contains(lower, strings.ToLower(svc)) {
			return svc, ""
		}
		for _, kw := range serviceKeywords[svc] {
			if strings.Contains(lower, kw) {
				return svc, ""
			}
		}
	}

	if e.LLM == nil {
		return "", ""
	}
	llmCtx, cancel := context.WithTimeout(ctx, e.llmTimeout())
	defer cancel()
	prompt := fmt.Sprintf(`Extract the service type from: %q
Available: %s
Reply with ONLY the exact service name or "NOT_FOUND".
Service:`, message, strings.Join(e.ServiceTypes, ", "))
	reply, err := e.LLM.Complete(llmCtx, prompt)
	if err != nil {
		// Model unavailable or slow; extraction simply yields nothing new.
		return "", ""
	}
	reply = strings.Trim(strings.TrimSpace(reply), `"'`)
	for _, svc := range e.ServiceTypes {
		if strings.EqualFold(svc, reply) {
			return svc, "service type resolved by language model"
		}
	}
	return "", ""
}

func (e *Extractor) llmTimeout() time.Duration {
	if e.LLMTimeout > 0 {
		return e.LLMTimeout
	}
	return 5 * time.Second
}

// extractName treats a short, purely alphabetic message as a name, as long
// as it does not look like booking chatter.
func extractName(message string) string {
	clean := strings.TrimSpace(message)
	if clean == "" || len(clean) >= 50 || len(strings.Fields(clean)) > 5 {
		return ""
	}
	if strings.ContainsAny(clean, "@:0123456789") {
		return ""
	}
	lower := strings.ToLower(clean)
	for _, phrase := range []string{"book", "appointment", "reservation", "schedule", "want", "need", "service", "hello", "hi ", "hey", "thank", "bye"} {
		if strings.Contains(lower, phrase) {
			return ""
		}
	}
	letters := strings.ReplaceAll(strings.ReplaceAll(clean, " ", ""), "-", "")
	for _, r := range letters {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return ""
		}
	}
	return titleCase(clean)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
