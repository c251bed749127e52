package outreach

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSender delivers one outreach email to a recipient.
type EmailSender interface {
	SendEmail(ctx context.Context, toEmail, toName string) error
}

// SendGridSender sends the outreach campaign email through SendGrid.
type SendGridSender struct {
	apiKey   string
	from     string
	fromName string
	replyTo  string
	subject  string
}

// NewSendGridSender creates a SendGrid-backed email sender.
func NewSendGridSender(apiKey, from, fromName, replyTo, subject string) *SendGridSender {
	return &SendGridSender{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
		replyTo:  replyTo,
		subject:  subject,
	}
}

// SendEmail delivers the campaign email to a single address.
func (s *SendGridSender) SendEmail(ctx context.Context, toEmail, toName string) error {
	if s.apiKey == "" {
		return fmt.Errorf("sendgrid API key is not configured")
	}

	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, s.subject, to, EmailPlainText(), EmailHTML())
	if s.replyTo != "" {
		message.SetReplyTo(mail.NewEmail("", s.replyTo))
	}

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned error status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
