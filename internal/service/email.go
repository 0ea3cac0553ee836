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
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, to, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendPayoutNotification(ctx context.Context, toEmail, providerName string, amount float64, reference string) error {
	subject := "Payout issued"
	body := fmt.Sprintf("Hello %s,\n\nA payout of %.2f has been issued to you.", providerName, amount)
	if reference != "" {
		body += fmt.Sprintf("\nReference: %s", reference)
	}
	body += "\n\nBest regards,\nThe Trips Team"
	return s.send(ctx, toEmail, subject, body)
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, toEmail string, bookingID int64, lineCount int, total float64) error {
	subject := fmt.Sprintf("Booking #%d confirmed", bookingID)
	body := fmt.Sprintf("Booking #%d has been confirmed with %d service lines totalling %.2f.\n\nThe Trips Team", bookingID, lineCount, total)
	return s.send(ctx, toEmail, subject, body)
}
