package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/logger"
	"hostellink-backend/internal/repository"
	"hostellink-backend/internal/utils"

	"github.com/google/uuid"
)

var (
	ErrPaymentFailed      = errors.New("deposit payment was not completed")
	ErrDisputeNeedsReason = errors.New("a dispute must include a reason")
)

const defaultCancellationReason = "Student cancelled before confirmation"

type bookingService struct {
	bookingRepo repository.BookingRepository
	receiptRepo repository.ReceiptRepository
	roomRepo    repository.RoomRepository
	hostelRepo  repository.HostelRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
	payments    PaymentService
	emails      EmailService
	platformFee int64
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	receiptRepo repository.ReceiptRepository,
	roomRepo repository.RoomRepository,
	hostelRepo repository.HostelRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	payments PaymentService,
	emails EmailService,
	platformFee int64,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		receiptRepo: receiptRepo,
		roomRepo:    roomRepo,
		hostelRepo:  hostelRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		payments:    payments,
		emails:      emails,
		platformFee: platformFee,
	}
}

func (s *bookingService) BookRoom(ctx context.Context, ident domain.Identity, roomID, phoneNumber string) (*domain.Booking, *domain.Receipt, error) {
	if !ident.IsStudent() {
		return nil, nil, domain.ErrUnauthorized
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	// Advisory pre-check only; the conditional update inside
	// CreateInEscrow is what actually prevents a double booking.
	if !room.IsVacant {
		return nil, nil, domain.ErrRoomAlreadyBooked
	}

	hostel, err := s.hostelRepo.GetByID(ctx, room.HostelID)
	if err != nil {
		return nil, nil, err
	}

	deposit := room.DepositAmount
	if deposit <= 0 {
		deposit = room.PricePerMonth
	}
	if deposit <= 0 {
		return nil, nil, domain.ErrInvalidAmount
	}
	total := deposit + s.platformFee

	bookingID := uuid.NewString()
	payment, err := s.payments.InitiateDeposit(ctx, phoneNumber, total, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if !payment.Success {
		return nil, nil, ErrPaymentFailed
	}

	booking := &domain.Booking{
		ID:                 bookingID,
		StudentID:          ident.UserID,
		HostelID:           hostel.ID,
		RoomID:             &room.ID,
		DepositAmount:      deposit,
		PlatformFee:        s.platformFee,
		PaymentAmount:      total,
		PaymentStatus:      domain.PaymentStatusCompleted,
		EscrowStatus:       domain.EscrowStatusHeld,
		MpesaTransactionID: payment.TransactionID,
	}
	receipt := &domain.Receipt{
		ID:            uuid.NewString(),
		BookingID:     bookingID,
		StudentID:     ident.UserID,
		ReceiptNumber: utils.GenerateReceiptNumber(time.Now()),
		DepositAmount: deposit,
		PlatformFee:   s.platformFee,
		TotalPaid:     total,
		PaymentMethod: "mpesa",
		Status:        domain.ReceiptStatusDepositHeld,
	}

	if err := s.bookingRepo.CreateInEscrow(ctx, booking, receipt); err != nil {
		return nil, nil, err
	}

	s.notify(ctx, hostel.LandlordID, bookingID,
		"New booking",
		fmt.Sprintf("A room at %s was booked. KSh %d is held in escrow until the student confirms move-in.", hostel.Name, deposit))
	if user, err := s.userRepo.GetByID(ctx, ident.UserID); err == nil {
		if err := s.emails.SendBookingConfirmation(ctx, user.Email, hostel.Name, total); err != nil {
			logger.Warn("booking confirmation email failed", "booking_id", bookingID, "error", err)
		}
	}

	return booking, receipt, nil
}

// ConfirmRoom is the student's move-in confirmation; it is what
// releases the deposit from escrow to the landlord.
func (s *bookingService) ConfirmRoom(ctx context.Context, ident domain.Identity, bookingID string) (*domain.Booking, error) {
	booking, err := s.requireStudentOwner(ctx, ident, bookingID)
	if err != nil {
		return nil, err
	}
	hostel, err := s.hostelRepo.GetByID(ctx, booking.HostelID)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Release(ctx, booking.ID, hostel.LandlordID); err != nil {
		return nil, err
	}

	s.notify(ctx, hostel.LandlordID, booking.ID,
		"Deposit released",
		fmt.Sprintf("A student confirmed move-in at %s. KSh %d was credited to your wallet.", hostel.Name, booking.DepositAmount))

	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *bookingService) CancelBooking(ctx context.Context, ident domain.Identity, bookingID, reason string) (*domain.Booking, error) {
	booking, err := s.requireStudentOwner(ctx, ident, bookingID)
	if err != nil {
		return nil, err
	}
	if reason == "" {
		reason = defaultCancellationReason
	}

	if err := s.bookingRepo.Refund(ctx, booking.ID, reason); err != nil {
		return nil, err
	}

	if hostel, err := s.hostelRepo.GetByID(ctx, booking.HostelID); err == nil {
		if user, err := s.userRepo.GetByID(ctx, ident.UserID); err == nil {
			if err := s.emails.SendBookingCancellation(ctx, user.Email, hostel.Name, booking.DepositAmount); err != nil {
				logger.Warn("cancellation email failed", "booking_id", bookingID, "error", err)
			}
		}
		s.notify(ctx, hostel.LandlordID, booking.ID,
			"Booking cancelled",
			fmt.Sprintf("A booking at %s was cancelled. The room is open again and the deposit of KSh %d was refunded.", hostel.Name, booking.DepositAmount))
	}

	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *bookingService) RaiseDispute(ctx context.Context, ident domain.Identity, bookingID, reason string) (*domain.Booking, error) {
	booking, err := s.requireStudentOwner(ctx, ident, bookingID)
	if err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, ErrDisputeNeedsReason
	}

	if err := s.bookingRepo.Dispute(ctx, booking.ID, reason); err != nil {
		return nil, err
	}

	s.notify(ctx, booking.StudentID, booking.ID,
		"Dispute received",
		"Your booking is under review. The deposit stays in escrow until an admin resolves the dispute.")

	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *bookingService) ResolveDispute(ctx context.Context, bookingID string, releaseToLandlord bool, resolution string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if releaseToLandlord {
		hostel, err := s.hostelRepo.GetByID(ctx, booking.HostelID)
		if err != nil {
			return nil, err
		}
		err = s.bookingRepo.ResolveRelease(ctx, bookingID, hostel.LandlordID, resolution)
		if err != nil {
			return nil, err
		}
	} else if err := s.bookingRepo.ResolveRefund(ctx, bookingID, resolution); err != nil {
		return nil, err
	}

	s.notify(ctx, booking.StudentID, booking.ID, "Dispute resolved", resolution)

	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *bookingService) GetBooking(ctx context.Context, ident domain.Identity, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeBookingRead(ctx, ident, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListMyBookings(ctx context.Context, ident domain.Identity) ([]domain.Booking, error) {
	if ident.IsStudent() {
		return s.bookingRepo.ListByStudent(ctx, ident.UserID)
	}

	hostels, err := s.hostelRepo.ListByLandlord(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	var all []domain.Booking
	for _, h := range hostels {
		bookings, err := s.bookingRepo.ListByHostel(ctx, h.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, bookings...)
	}
	return all, nil
}

func (s *bookingService) GetReceipt(ctx context.Context, ident domain.Identity, bookingID string) (*domain.Receipt, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeBookingRead(ctx, ident, booking); err != nil {
		return nil, err
	}
	return s.receiptRepo.GetByBooking(ctx, bookingID)
}

func (s *bookingService) ListMyReceipts(ctx context.Context, ident domain.Identity) ([]domain.Receipt, error) {
	if !ident.IsStudent() {
		return nil, domain.ErrUnauthorized
	}
	return s.receiptRepo.ListByStudent(ctx, ident.UserID)
}

func (s *bookingService) requireStudentOwner(ctx context.Context, ident domain.Identity, bookingID string) (*domain.Booking, error) {
	if !ident.IsStudent() {
		return nil, domain.ErrUnauthorized
	}
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.StudentID != ident.UserID {
		return nil, domain.ErrUnauthorized
	}
	return booking, nil
}

func (s *bookingService) authorizeBookingRead(ctx context.Context, ident domain.Identity, booking *domain.Booking) error {
	if booking.StudentID == ident.UserID {
		return nil
	}
	hostel, err := s.hostelRepo.GetByID(ctx, booking.HostelID)
	if err != nil {
		return err
	}
	if hostel.LandlordID == ident.UserID {
		return nil
	}
	return domain.ErrUnauthorized
}

// notify records an in-app notification. Failures are logged and
// swallowed so a notification outage never rolls back money movement.
func (s *bookingService) notify(ctx context.Context, userID, bookingID, title, message string) {
	note := &domain.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   title,
		Message: message,
		Attributes: map[string]string{
			"booking_id": bookingID,
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("notification write failed", "user_id", userID, "booking_id", bookingID, "error", err)
	}
}
