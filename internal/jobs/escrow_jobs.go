package jobs

import (
	"context"
	"time"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/logger"

	"github.com/google/uuid"
)

// SendEscrowReminders nudges students whose deposit has been sitting
// in escrow longer than the configured number of days. Reminders are
// advisory; no escrow state changes here.
func (jr *JobRunner) SendEscrowReminders() {
	jr.runWithRecovery("SendEscrowReminders", func() {
		ctx := context.Background()
		days := jr.config.Scheduler.EscrowReminderDays

		bookings, err := jr.store.BookingRepository.ListHeldSince(ctx, days)
		if err != nil {
			logger.Error("Failed to list stale escrow bookings", "error", err)
			return
		}
		logger.Info("Found bookings awaiting confirmation", "count", len(bookings), "older_than_days", days)

		for _, booking := range bookings {
			student, err := jr.store.UserRepository.GetByID(ctx, booking.StudentID)
			if err != nil {
				logger.Error("Failed to load student for reminder", "booking_id", booking.ID, "error", err)
				continue
			}
			hostel, err := jr.store.HostelRepository.GetByID(ctx, booking.HostelID)
			if err != nil {
				logger.Error("Failed to load hostel for reminder", "booking_id", booking.ID, "error", err)
				continue
			}

			daysHeld := int(time.Since(booking.BookedAt).Hours() / 24)
			if err := jr.services.Email.SendEscrowReminder(ctx, student.Email, hostel.Name, daysHeld); err != nil {
				logger.Error("Failed to send escrow reminder", "booking_id", booking.ID, "error", err)
				continue
			}

			note := &domain.Notification{
				ID:      uuid.NewString(),
				UserID:  booking.StudentID,
				Title:   "Confirm your move-in",
				Message: "Your deposit is still in escrow. Confirm your move-in or cancel the booking.",
				Attributes: map[string]string{
					"booking_id": booking.ID,
				},
			}
			if err := jr.store.NotificationRepository.Create(ctx, note); err != nil {
				logger.Error("Failed to write reminder notification", "booking_id", booking.ID, "error", err)
			}

			logger.Debug("Sent escrow reminder",
				"booking_id", booking.ID,
				"student_id", booking.StudentID,
				"days_held", daysHeld)
		}
	})
}

// ReconcileWallets compares every wallet's cached balance against the
// running sum of its transaction log and reports drift. The job only
// observes; correcting a drifted balance is a manual operation.
func (jr *JobRunner) ReconcileWallets() {
	jr.runWithRecovery("ReconcileWallets", func() {
		ctx := context.Background()

		walletIDs, err := jr.store.WalletRepository.ListWalletIDs(ctx)
		if err != nil {
			logger.Error("Failed to list wallets", "error", err)
			return
		}

		drifted := 0
		for _, id := range walletIDs {
			balance, ledgerSum, err := jr.store.WalletRepository.Reconcile(ctx, id)
			if err != nil {
				logger.Error("Failed to reconcile wallet", "wallet_id", id, "error", err)
				continue
			}
			if balance != ledgerSum {
				drifted++
				logger.Error("Wallet balance drifted from transaction log",
					"wallet_id", id,
					"balance", balance,
					"ledger_sum", ledgerSum)
			}
		}

		logger.Info("Wallet reconciliation finished", "wallets", len(walletIDs), "drifted", drifted)
	})
}
