package repository

import (
	"context"
	"hostellink-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetRole(ctx context.Context, userID string) (domain.Role, error)
}

type HostelRepository interface {
	Create(ctx context.Context, hostel *domain.Hostel) error
	GetByID(ctx context.Context, id string) (*domain.Hostel, error)
	Update(ctx context.Context, hostel *domain.Hostel) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Hostel, int32, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]domain.Hostel, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id string) error
	ListByHostel(ctx context.Context, hostelID string) ([]domain.Room, error)
	// SetVacant is the landlord override; booking-driven vacancy flips
	// happen inside BookingRepository transactions.
	SetVacant(ctx context.Context, roomID string, vacant bool) error
}

// BookingRepository owns the multi-table transactions of the escrow
// lifecycle. Each mutation asserts the expected prior state and
// reports domain.ErrRoomAlreadyBooked / domain.ErrStaleTransition
// when the conditional update affects zero rows; on any error the
// transaction rolls back and no partial state is visible.
type BookingRepository interface {
	// CreateInEscrow atomically re-checks room vacancy, flips the room
	// to occupied, inserts the booking in held_in_escrow and issues
	// its receipt.
	CreateInEscrow(ctx context.Context, booking *domain.Booking, receipt *domain.Receipt) error

	// Release moves held_in_escrow -> released_to_landlord, credits
	// the landlord wallet with the deposit (never the fee) and marks
	// the receipt released. At most one credit per booking.
	Release(ctx context.Context, bookingID, landlordID string) error

	// Refund moves held_in_escrow -> refunded_to_student, re-vacates
	// the room and marks the receipt refunded.
	Refund(ctx context.Context, bookingID, reason string) error

	// Dispute moves held_in_escrow -> under_review.
	Dispute(ctx context.Context, bookingID, reason string) error

	// ResolveRelease / ResolveRefund apply an admin resolution from
	// under_review; side effects mirror Release / Refund.
	ResolveRelease(ctx context.Context, bookingID, landlordID, resolution string) error
	ResolveRefund(ctx context.Context, bookingID, resolution string) error

	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByStudent(ctx context.Context, studentID string) ([]domain.Booking, error)
	ListByHostel(ctx context.Context, hostelID string) ([]domain.Booking, error)
	ListHeldSince(ctx context.Context, olderThanDays int) ([]domain.Booking, error)
}

type ReceiptRepository interface {
	GetByBooking(ctx context.Context, bookingID string) (*domain.Receipt, error)
	ListByStudent(ctx context.Context, studentID string) ([]domain.Receipt, error)
}

type WalletRepository interface {
	// GetOrCreateByLandlord returns the landlord's wallet, creating an
	// empty one on first access.
	GetOrCreateByLandlord(ctx context.Context, landlordID string) (*domain.Wallet, error)

	// Withdraw debits the wallet if and only if the balance covers the
	// amount, appending the withdrawal transaction in the same
	// database transaction. Zero rows affected on the conditional
	// update means domain.ErrInsufficientBalance.
	Withdraw(ctx context.Context, walletID string, amount int64, description string) error

	ListTransactions(ctx context.Context, walletID string, limit int32) ([]domain.WalletTransaction, error)

	// Reconcile recomputes the running sum of the transaction log and
	// returns it next to the denormalized balance. The log is
	// authoritative.
	Reconcile(ctx context.Context, walletID string) (balance int64, ledgerSum int64, err error)
	ListWalletIDs(ctx context.Context) ([]string, error)
}

type PlotRepository interface {
	GetByPlotNumber(ctx context.Context, plotNumber string) (*domain.VerifiedPlot, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID string) error
}
