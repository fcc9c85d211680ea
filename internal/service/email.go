package service

import (
	"context"
	"fmt"

	"hostellink-backend/internal/config"
	"hostellink-backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// NewEmailService picks the outbound provider from configuration.
func NewEmailService(cfg config.EmailConfig) EmailService {
	if cfg.Provider == "sendgrid" {
		return NewSendGridEmailService(cfg)
	}
	return NewSMTPEmailService(cfg)
}

type smtpEmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPEmailService(cfg config.EmailConfig) EmailService {
	return &smtpEmailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.From,
	}
}

func (s *smtpEmailService) SendBookingConfirmation(ctx context.Context, email, hostelName string, amount int64) error {
	subject := "Your HostelLink booking is confirmed"
	body := fmt.Sprintf(`
		<h2>Booking confirmed</h2>
		<p>We received your payment of <strong>KSh %d</strong> for <strong>%s</strong>.</p>
		<p>The deposit is held in escrow and will only be released to the
		landlord once you confirm your move-in from the app.</p>
	`, amount, hostelName)
	return s.send(email, subject, body)
}

func (s *smtpEmailService) SendBookingCancellation(ctx context.Context, email, hostelName string, deposit int64) error {
	subject := "Your HostelLink booking was cancelled"
	body := fmt.Sprintf(`
		<h2>Booking cancelled</h2>
		<p>Your booking at <strong>%s</strong> has been cancelled.</p>
		<p>Your deposit of <strong>KSh %d</strong> will be refunded to the
		M-Pesa number you paid with. The platform fee is non-refundable.</p>
	`, hostelName, deposit)
	return s.send(email, subject, body)
}

func (s *smtpEmailService) SendEscrowReminder(ctx context.Context, email, hostelName string, daysHeld int) error {
	subject := "Reminder: confirm your move-in"
	body := fmt.Sprintf(`
		<h2>Your deposit is still in escrow</h2>
		<p>Your booking at <strong>%s</strong> has been waiting for %d days.</p>
		<p>Once you have moved in, please confirm from the app so the
		landlord can receive the deposit. If you no longer want the room,
		cancel the booking to get your deposit back.</p>
	`, hostelName, daysHeld)
	return s.send(email, subject, body)
}

func (s *smtpEmailService) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	logger.Debug("email sent", "to", to, "subject", subject)
	return nil
}
