package chat

import (
	"fmt"
	"strings"
	"time"

	"bookassist/models"
)

// fieldLabels are the display names used in summaries and error replies.
var fieldLabels = map[string]string{
	models.FieldName:        "Name",
	models.FieldEmail:       "Email",
	models.FieldPhone:       "Phone",
	models.FieldServiceType: "Service",
	models.FieldDate:        "Date",
	models.FieldTime:        "Time",
}

var fieldEmojis = map[string]string{
	models.FieldName:        "👤",
	models.FieldEmail:       "📧",
	models.FieldPhone:       "📱",
	models.FieldServiceType: "🎯",
	models.FieldDate:        "📅",
	models.FieldTime:        "⏰",
}

// promptFor returns the fixed question for a missing field. The text is
// keyed by field name only; extraction failures re-use the same wording.
func (f *Flow) promptFor(field string, now time.Time) string {
	switch field {
	case models.FieldName:
		return "What's your name?"
	case models.FieldEmail:
		return "What's your email address?\n📧 Example: john.doe@gmail.com"
	case models.FieldPhone:
		return "What's your phone number?\n📱 Example: 9876543210"
	case models.FieldServiceType:
		var b strings.Builder
		b.WriteString("What service would you like?\n\nAvailable Services:\n")
		for _, svc := range f.Validator.ServiceTypes {
			if _, info, ok := f.Catalog.Lookup(svc); ok {
				fmt.Fprintf(&b, "%s %s - %s\n", info.Icon, svc, info.PriceLabel())
			} else {
				fmt.Fprintf(&b, "• %s\n", svc)
			}
		}
		b.WriteString("\n💡 Type the service name (e.g., 'Doctor', 'Salon')")
		return b.String()
	case models.FieldDate:
		return fmt.Sprintf("What date?\n\n📅 Format: YYYY-MM-DD\nQuick picks:\n• Today: %s\n• Tomorrow: %s",
			now.Format(f.Validator.DateLayout), now.AddDate(0, 0, 1).Format(f.Validator.DateLayout))
	case models.FieldTime:
		return "What time?\n\n⏰ Format: HH:MM (24-hour)\nExamples: 09:00, 14:30, 18:00"
	}
	return fmt.Sprintf("Please provide your %s.", strings.ReplaceAll(field, "_", " "))
}

// collectedSummary renders the fields accepted so far, shown before each
// re-prompt so the user always sees progress.
func collectedSummary(record *models.BookingRecord) string {
	var collected []string
	for _, field := range models.RequiredFields {
		if record.Has(field) {
			collected = append(collected, fmt.Sprintf("%s %s: %s", fieldEmojis[field], fieldLabels[field], record.Get(field)))
		}
	}
	if len(collected) == 0 {
		return ""
	}
	return "✅ Information collected:\n" + strings.Join(collected, "\n") + "\n\n"
}

// confirmationSummary renders the full record for the yes/no confirmation
// turn. It contains exactly the six collected fields plus the price line.
func (f *Flow) confirmationSummary(record *models.BookingRecord) string {
	icon := "🎯"
	if _, info, ok := f.Catalog.Lookup(record.ServiceType); ok {
		icon = info.Icon
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s Perfect! Confirm your booking:\n\n", icon)
	fmt.Fprintf(&b, "👤 Name: %s\n", record.Name)
	fmt.Fprintf(&b, "📧 Email: %s\n", record.Email)
	fmt.Fprintf(&b, "📱 Phone: %s\n", record.Phone)
	fmt.Fprintf(&b, "%s Service: %s\n", icon, record.ServiceType)
	if record.Price != "" {
		fmt.Fprintf(&b, "💰 Price: %s\n", record.Price)
	}
	fmt.Fprintf(&b, "📅 Date: %s\n", record.Date)
	fmt.Fprintf(&b, "⏰ Time: %s\n\n", record.Time)
	b.WriteString("✅ Reply 'yes' to confirm\n❌ Reply 'no' to make changes")
	return b.String()
}

// confirmedReply renders the final success message with the
// service-specific closing line.
func (f *Flow) confirmedReply(bookingID string, record *models.BookingRecord) string {
	icon, closing := "🎯", "Thank you for booking!"
	if _, info, ok := f.Catalog.Lookup(record.ServiceType); ok {
		icon = info.Icon
		closing = info.Message
	}

	var b strings.Builder
	b.WriteString("🎉 BOOKING CONFIRMED!\n\n")
	fmt.Fprintf(&b, "📋 Booking ID: %s\n", bookingID)
	fmt.Fprintf(&b, "%s Service: %s\n", icon, record.ServiceType)
	fmt.Fprintf(&b, "📅 Date: %s at %s\n", record.Date, record.Time)
	if record.Price != "" {
		fmt.Fprintf(&b, "💰 Total: %s\n", record.Price)
	}
	fmt.Fprintf(&b, "\n✉️ A confirmation email is on its way to %s\n\n", record.Email)
	fmt.Fprintf(&b, "💫 %s", closing)
	return b.String()
}

// validationErrorReply renders field-scoped rejection messages and asks for
// the first failing field again.
func validationErrorReply(errs []*ValidationError) string {
	var b strings.Builder
	b.WriteString("⚠️ I found some issues:\n\n")
	for _, e := range errs {
		fmt.Fprintf(&b, "• %s: %s\n", fieldLabels[e.Field], e.Reason)
	}
	fmt.Fprintf(&b, "\nPlease provide the correct %s.", strings.ReplaceAll(errs[0].Field, "_", " "))
	return b.String()
}
