package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{apiKey: apiKey, fromEmail: fromEmail, fromName: fromName}
}

func (s *emailService) SendSubscriptionExpiryReminder(ctx context.Context, email, name, endDate string, daysLeft int) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(name, email)

	subject := "Your Sunlight VM subscription is about to expire"
	plain := fmt.Sprintf("Hello %s,\n\nYour Sunlight VM subscription ends on %s (%d day(s) from now). Renew it to keep access to your dashboard.\n\nBest regards,\nThe Sunlight VM Team",
		name, endDate, daysLeft)
	html := fmt.Sprintf("<p>Hello %s,</p><p>Your Sunlight VM subscription ends on <b>%s</b> (%d day(s) from now). Renew it to keep access to your dashboard.</p><p>Best regards,<br>The Sunlight VM Team</p>",
		name, endDate, daysLeft)

	message := mail.NewSingleEmail(from, subject, recipient, plain, html)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
