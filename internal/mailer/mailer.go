package mailer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mailersend/mailersend-go"
)

// Service sends templated transactional email through MailerSend.
type Service struct {
	client     *mailersend.Mailersend
	fromName   string
	fromEmail  string
	templateID string
}

// New creates a mail service bound to one template.
func New(apiKey, fromName, fromEmail, templateID string) *Service {
	return &Service{
		client:     mailersend.NewMailersend(apiKey),
		fromName:   fromName,
		fromEmail:  fromEmail,
		templateID: templateID,
	}
}

// SendTemplate sends the configured template to a single recipient with the
// given personalization data.
func (s *Service) SendTemplate(to, subject string, data map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	message := s.client.Email.NewMessage()
	message.SetFrom(mailersend.From{
		Name:  s.fromName,
		Email: s.fromEmail,
	})
	message.SetRecipients([]mailersend.Recipient{
		{Email: to},
	})
	message.SetSubject(subject)
	message.SetTemplateID(s.templateID)
	message.SetPersonalization([]mailersend.Personalization{
		{Email: to, Data: data},
	})

	res, err := s.client.Email.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Println("Email sent. Message ID:", res.Header.Get("X-Message-Id"))
	return nil
}
