package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/akshayrj/portfolio-backend/config"
)

// Sender delivers transactional email. Services depend on this
// interface so tests can swap in a recording fake.
type Sender interface {
	Send(to, subject, htmlBody, textBody string) error
}

// SMTPMailer sends mail through a plain SMTP relay (Mailgun, Gmail, ...).
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to, subject, htmlBody, textBody string) error {
	if m.cfg.Username == "" || m.cfg.Password == "" {
		return fmt.Errorf("smtp credentials are not configured")
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	message := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		from, to, subject, htmlBody,
	))

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port

	if err := smtp.SendMail(addr, auth, from, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// OTPEmail renders the one-time-passcode message.
func OTPEmail(code string) (subject, htmlBody, textBody string) {
	subject = "Your Admin OTP Code"
	htmlBody = fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; padding: 20px;">
	<p>Your OTP is: <strong style="font-size: 24px; letter-spacing: 3px;">%s</strong></p>
	<p>This OTP is valid for 5 minutes.</p>
	<p style="color: #999; font-size: 13px;">If you did not request this code, you can ignore this email.</p>
</div>`, code)
	textBody = fmt.Sprintf("Your OTP is: %s. It is valid for 5 minutes.", code)
	return subject, htmlBody, textBody
}

// ContactEmail renders a contact-form submission for the site owner.
func ContactEmail(name, email, message string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("New message from %s", name)
	htmlBody = fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; padding: 20px;">
	<p><strong>Sender:</strong> %s</p>
	<p><strong>Sender Email:</strong> %s</p>
	<p><strong>Message:</strong></p>
	<p>%s</p>
</div>`, name, email, message)
	textBody = fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message)
	return subject, htmlBody, textBody
}
