package chat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"bookassist/models"
)

var (
	emailPattern     = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phoneSeparators  = regexp.MustCompile(`[\s\-\(\)\+\.]`)
	digitPattern     = regexp.MustCompile(`[0-9]`)
	timePartsPattern = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)
)

// Validator checks and normalizes booking fields. Rules are deterministic;
// temporal checks are evaluated against the caller-supplied "now" so they
// stay reproducible in tests.
type Validator struct {
	ServiceTypes   []string
	MinPhoneDigits int
	MaxPhoneDigits int
	DateLayout     string
	TimeLayout     string
}

// NewValidator builds a validator from the configured booking constraints.
func NewValidator(serviceTypes []string, minPhoneDigits int, dateLayout, timeLayout string) *Validator {
	return &Validator{
		ServiceTypes:   serviceTypes,
		MinPhoneDigits: minPhoneDigits,
		MaxPhoneDigits: 15,
		DateLayout:     dateLayout,
		TimeLayout:     timeLayout,
	}
}

// Validate checks one field value against its rules. On success it returns
// the normalized value; on failure a *ValidationError with a field-scoped,
// user-facing reason. The date field must be validated (or at least set on
// the record) before the time field of the same record.
func (v *Validator) Validate(field, raw string, record *models.BookingRecord, now time.Time) (string, error) {
	value := strings.TrimSpace(raw)
	switch field {
	case models.FieldName:
		return v.validateName(value)
	case models.FieldEmail:
		return v.validateEmail(value)
	case models.FieldPhone:
		return v.validatePhone(value)
	case models.FieldServiceType:
		return v.validateServiceType(value)
	case models.FieldDate:
		return v.validateDate(value, now)
	case models.FieldTime:
		return v.validateTime(value, record.Date, now)
	}
	return "", NewValidationError(field, fmt.Sprintf("unknown field %q", field))
}

func (v *Validator) validateName(value string) (string, error) {
	if value == "" {
		return "", NewValidationError(models.FieldName, "Name cannot be empty. Please provide your full name")
	}
	if digitPattern.MatchString(value) {
		return "", NewValidationError(models.FieldName, fmt.Sprintf("'%s' contains digits. Names should only contain letters", value))
	}
	return value, nil
}

func (v *Validator) validateEmail(value string) (string, error) {
	if !emailPattern.MatchString(value) {
		return "", NewValidationError(models.FieldEmail, fmt.Sprintf("'%s' is not valid. Use format: name@example.com", value))
	}
	return value, nil
}

func (v *Validator) validatePhone(value string) (string, error) {
	stripped := phoneSeparators.ReplaceAllString(value, "")
	if stripped == "" || strings.IndexFunc(stripped, func(r rune) bool { return r < '0' || r > '9' }) >= 0 ||
		len(stripped) < v.MinPhoneDigits || len(stripped) > v.MaxPhoneDigits {
		return "", NewValidationError(models.FieldPhone,
			fmt.Sprintf("'%s' is not valid. Provide %d-%d digits", value, v.MinPhoneDigits, v.MaxPhoneDigits))
	}
	return stripped, nil
}

func (v *Validator) validateServiceType(value string) (string, error) {
	for _, svc := range v.ServiceTypes {
		if strings.EqualFold(svc, value) {
			return svc, nil
		}
	}
	return "", NewValidationError(models.FieldServiceType,
		fmt.Sprintf("'%s' is not a supported service. Available: %s", value, strings.Join(v.ServiceTypes, ", ")))
}

func (v *Validator) validateDate(value string, now time.Time) (string, error) {
	parsed, err := time.ParseInLocation(v.DateLayout, value, now.Location())
	if err != nil {
		return "", NewValidationError(models.FieldDate,
			fmt.Sprintf("'%s' is invalid. Use YYYY-MM-DD (e.g., %s)", value, now.AddDate(0, 0, 1).Format(v.DateLayout)))
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsed.Before(today) {
		daysPast := int(today.Sub(parsed).Hours() / 24)
		return "", NewValidationError(models.FieldDate,
			fmt.Sprintf("'%s' is %d day(s) in the past. Choose a future date", value, daysPast))
	}
	return parsed.Format(v.DateLayout), nil
}

// validateTime parses a lenient H:M input, normalizes it to zero-padded
// HH:MM, and rejects times already past when the booking date is today.
// The zero padding is mandatory: the notification template performs no
// further formatting.
func (v *Validator) validateTime(value, recordDate string, now time.Time) (string, error) {
	m := timePartsPattern.FindStringSubmatch(value)
	if m == nil {
		return "", NewValidationError(models.FieldTime,
			fmt.Sprintf("'%s' is invalid. Use HH:MM format (e.g., 14:30)", value))
	}
	hours, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	if hours > 23 {
		return "", NewValidationError(models.FieldTime,
			fmt.Sprintf("'%s' has invalid hours. Use 00-23", value))
	}
	if mins > 59 {
		return "", NewValidationError(models.FieldTime,
			fmt.Sprintf("'%s' has invalid minutes. Use 00-59", value))
	}
	normalized := fmt.Sprintf("%02d:%02d", hours, mins)

	if recordDate == now.Format(v.DateLayout) {
		candidate := time.Date(now.Year(), now.Month(), now.Day(), hours, mins, 0, 0, now.Location())
		if !candidate.After(now) {
			past := now.Sub(candidate)
			return "", NewValidationError(models.FieldTime,
				fmt.Sprintf("'%s' is %s past. Choose a future time", normalized, formatElapsed(past)))
		}
	}
	return normalized, nil
}

// ValidateFinal re-checks that the combined date+time is still in the future
// at the moment of confirmation. Time advances between turns, so this is
// never cached.
func (v *Validator) ValidateFinal(record *models.BookingRecord, now time.Time) error {
	if _, err := v.validateDate(record.Date, now); err != nil {
		return err
	}
	if _, err := v.validateTime(record.Time, record.Date, now); err != nil {
		return err
	}
	return nil
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Minute)
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
