package service

import (
	"context"
	"fmt"
	"net/http"

	"hostellink-backend/internal/config"
	"hostellink-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	client   *sendgrid.Client
	from     *mail.Email
	fromAddr string
}

func NewSendGridEmailService(cfg config.EmailConfig) EmailService {
	return &sendGridEmailService{
		client:   sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:     mail.NewEmail("HostelLink", cfg.From),
		fromAddr: cfg.From,
	}
}

func (s *sendGridEmailService) SendBookingConfirmation(ctx context.Context, email, hostelName string, amount int64) error {
	return s.send(ctx, email, "Your HostelLink booking is confirmed",
		fmt.Sprintf("We received your payment of KSh %d for %s. The deposit is held in escrow until you confirm your move-in.", amount, hostelName))
}

func (s *sendGridEmailService) SendBookingCancellation(ctx context.Context, email, hostelName string, deposit int64) error {
	return s.send(ctx, email, "Your HostelLink booking was cancelled",
		fmt.Sprintf("Your booking at %s has been cancelled. KSh %d will be refunded to your M-Pesa number; the platform fee is non-refundable.", hostelName, deposit))
}

func (s *sendGridEmailService) SendEscrowReminder(ctx context.Context, email, hostelName string, daysHeld int) error {
	return s.send(ctx, email, "Reminder: confirm your move-in",
		fmt.Sprintf("Your booking at %s has been waiting for %d days. Confirm your move-in so the landlord can receive the deposit, or cancel to get it back.", hostelName, daysHeld))
}

func (s *sendGridEmailService) send(ctx context.Context, to, subject, body string) error {
	message := mail.NewSingleEmail(s.from, subject, mail.NewEmail("", to), body, body)
	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid rejected email to %s: status %d", to, resp.StatusCode)
	}
	logger.Debug("email sent", "to", to, "subject", subject)
	return nil
}
