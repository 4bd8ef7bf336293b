package notification

import (
	"context"
	"fmt"

	"bookassist/models"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer sends booking emails over SMTP.
type Mailer struct {
	dialer  *gomail.Dialer
	sender  string
	catalog models.ServiceCatalog
	logger  *zap.Logger
}

func NewMailer(host string, port int, sender, password string, catalog models.ServiceCatalog, logger *zap.Logger) *Mailer {
	return &Mailer{
		dialer:  gomail.NewDialer(host, port, sender, password),
		sender:  sender,
		catalog: catalog,
		logger:  logger,
	}
}

// SendConfirmation emails the customer their booking details.
func (m *Mailer) SendConfirmation(ctx context.Context, booking *models.Booking) error {
	subject := fmt.Sprintf("Booking Confirmed: %s on %s", booking.ServiceType, booking.Date)
	body := m.confirmationBody(booking)
	return m.send(ctx, booking.Email, subject, body)
}

// SendReminder emails the customer ahead of their appointment.
func (m *Mailer) SendReminder(ctx context.Context, booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: %s tomorrow at %s", booking.ServiceType, booking.Time)
	body := m.reminderBody(booking)
	return m.send(ctx, booking.Email, subject, body)
}

func (m *Mailer) send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	m.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func (m *Mailer) confirmationBody(booking *models.Booking) string {
	closing := "We look forward to seeing you!"
	icon := "📋"
	if _, info, ok := m.catalog.Lookup(booking.ServiceType); ok {
		closing = info.Message
		icon = info.Icon
	}
	return fmt.Sprintf(`<h2>%s Booking Confirmed!</h2>
<p>Hi %s, your booking is confirmed. Here are the details:</p>
<ul>
  <li><b>Booking ID:</b> %s</li>
  <li><b>Service:</b> %s</li>
  <li><b>Date:</b> %s</li>
  <li><b>Time:</b> %s</li>
  <li><b>Price:</b> %s</li>
</ul>
<p>%s</p>`,
		icon, booking.Name, booking.ID, booking.ServiceType,
		booking.Date, booking.Time, booking.Price, closing)
}

func (m *Mailer) reminderBody(booking *models.Booking) string {
	return fmt.Sprintf(`<h2>⏰ Appointment Reminder</h2>
<p>Hi %s, this is a friendly reminder about your upcoming booking:</p>
<ul>
  <li><b>Service:</b> %s</li>
  <li><b>Date:</b> %s</li>
  <li><b>Time:</b> %s</li>
</ul>
<p>See you soon!</p>`,
		booking.Name, booking.ServiceType, booking.Date, booking.Time)
}
