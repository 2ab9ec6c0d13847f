package service

import (
	"github.com/akshayrj/portfolio-backend/pkg/logger"
	"github.com/akshayrj/portfolio-backend/pkg/mailer"
)

// ContactService relays contact form submissions to the site owner's
// mailbox.
type ContactService interface {
	Send(name, email, message string) error
}

type contactService struct {
	mail    mailer.Sender
	ownerTo string
}

func NewContactService(mail mailer.Sender, ownerTo string) ContactService {
	return &contactService{mail: mail, ownerTo: ownerTo}
}

func (s *contactService) Send(name, email, message string) error {
	subject, htmlBody, textBody := mailer.ContactEmail(name, email, message)
	if err := s.mail.Send(s.ownerTo, subject, htmlBody, textBody); err != nil {
		logger.Error("Failed to relay contact message", err, map[string]interface{}{
			"from": email,
		})
		return ErrDeliveryFailed
	}

	logger.Info("Contact message relayed", map[string]interface{}{
		"from": email,
	})
	return nil
}
