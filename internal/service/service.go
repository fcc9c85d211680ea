package service

import (
	"context"
	"hostellink-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, fullName, email, phone, password string, role domain.Role) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type HostelService interface {
	CreateHostel(ctx context.Context, ident domain.Identity, hostel *domain.Hostel) error
	GetHostel(ctx context.Context, hostelID string) (*domain.Hostel, []domain.Room, error)
	ListHostels(ctx context.Context, page, pageSize int32) ([]domain.Hostel, int32, error)
	ListMyHostels(ctx context.Context, ident domain.Identity) ([]domain.Hostel, error)
	VerifyPlot(ctx context.Context, plotNumber string) (bool, error)

	AddRoom(ctx context.Context, ident domain.Identity, room *domain.Room) error
	UpdateRoom(ctx context.Context, ident domain.Identity, room *domain.Room) error
	DeleteRoom(ctx context.Context, ident domain.Identity, roomID string) error
	// MarkRoomVacant is the landlord override that reopens a room for
	// booking outside the cancellation path.
	MarkRoomVacant(ctx context.Context, ident domain.Identity, roomID string) error
}

type BookingService interface {
	// BookRoom runs the whole reservation flow: role check, fresh
	// vacancy pre-check, mocked deposit payment, atomic reserve +
	// booking + receipt, then non-fatal notifications.
	BookRoom(ctx context.Context, ident domain.Identity, roomID, phoneNumber string) (*domain.Booking, *domain.Receipt, error)
	ConfirmRoom(ctx context.Context, ident domain.Identity, bookingID string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, ident domain.Identity, bookingID, reason string) (*domain.Booking, error)
	RaiseDispute(ctx context.Context, ident domain.Identity, bookingID, reason string) (*domain.Booking, error)
	// ResolveDispute applies an admin decision to a booking under
	// review; the admin workflow itself lives outside this backend.
	ResolveDispute(ctx context.Context, bookingID string, releaseToLandlord bool, resolution string) (*domain.Booking, error)

	GetBooking(ctx context.Context, ident domain.Identity, bookingID string) (*domain.Booking, error)
	ListMyBookings(ctx context.Context, ident domain.Identity) ([]domain.Booking, error)
	GetReceipt(ctx context.Context, ident domain.Identity, bookingID string) (*domain.Receipt, error)
	ListMyReceipts(ctx context.Context, ident domain.Identity) ([]domain.Receipt, error)
}

type WalletService interface {
	GetWallet(ctx context.Context, ident domain.Identity) (*domain.Wallet, error)
	Withdraw(ctx context.Context, ident domain.Identity, amount int64) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, ident domain.Identity, limit int32) ([]domain.WalletTransaction, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID string, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
}

// PaymentResult is what the payment provider reports back for a
// deposit initiation.
type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

// PaymentService is the black-box payment provider boundary. The
// mocked implementation reports success synchronously; a production
// integration would confirm settlement via callback before the
// booking is persisted.
type PaymentService interface {
	InitiateDeposit(ctx context.Context, phoneNumber string, amount int64, bookingRef string) (*PaymentResult, error)
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, email, hostelName string, amount int64) error
	SendBookingCancellation(ctx context.Context, email, hostelName string, deposit int64) error
	SendEscrowReminder(ctx context.Context, email, hostelName string, daysHeld int) error
}
