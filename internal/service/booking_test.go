package service_test

import (
	"context"
	"testing"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBookingFixture() (*MockBookingRepo, *MockReceiptRepo, *MockRoomRepo, *MockHostelRepo, *MockUserRepo, *MockNotificationRepo, *MockPaymentService, *MockEmailService, service.BookingService) {
	bookingRepo := new(MockBookingRepo)
	receiptRepo := new(MockReceiptRepo)
	roomRepo := new(MockRoomRepo)
	hostelRepo := new(MockHostelRepo)
	userRepo := new(MockUserRepo)
	noteRepo := new(MockNotificationRepo)
	paymentSvc := new(MockPaymentService)
	emailSvc := new(MockEmailService)

	svc := service.NewBookingService(bookingRepo, receiptRepo, roomRepo, hostelRepo, userRepo, noteRepo, paymentSvc, emailSvc, 50)
	return bookingRepo, receiptRepo, roomRepo, hostelRepo, userRepo, noteRepo, paymentSvc, emailSvc, svc
}

func TestBookingService_BookRoom(t *testing.T) {
	ctx := context.Background()
	student := domain.Identity{UserID: "student-1", Role: domain.RoleStudent}

	room := &domain.Room{
		ID:            "room-1",
		HostelID:      "hostel-1",
		PricePerMonth: 6000,
		DepositAmount: 4500,
		IsVacant:      true,
	}
	hostel := &domain.Hostel{ID: "hostel-1", LandlordID: "landlord-1", Name: "Sunrise Hostel"}

	t.Run("Success", func(t *testing.T) {
		bookingRepo, _, roomRepo, hostelRepo, userRepo, noteRepo, paymentSvc, emailSvc, svc := newBookingFixture()

		roomRepo.On("GetByID", ctx, "room-1").Return(room, nil)
		hostelRepo.On("GetByID", ctx, "hostel-1").Return(hostel, nil)
		paymentSvc.On("InitiateDeposit", ctx, "0712345678", int64(4550), mock.AnythingOfType("string")).
			Return(&service.PaymentResult{Success: true, TransactionID: "MOCK1700000000000"}, nil)
		bookingRepo.On("CreateInEscrow", ctx, mock.AnythingOfType("*domain.Booking"), mock.AnythingOfType("*domain.Receipt")).Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)
		userRepo.On("GetByID", ctx, "student-1").Return(&domain.User{ID: "student-1", Email: "student@test.com"}, nil)
		emailSvc.On("SendBookingConfirmation", ctx, "student@test.com", "Sunrise Hostel", int64(4550)).Return(nil)

		booking, receipt, err := svc.BookRoom(ctx, student, "room-1", "0712345678")
		assert.NoError(t, err)
		assert.NotNil(t, booking)
		assert.Equal(t, int64(4500), booking.DepositAmount)
		assert.Equal(t, int64(50), booking.PlatformFee)
		assert.Equal(t, int64(4550), booking.PaymentAmount)
		assert.Equal(t, domain.EscrowStatusHeld, booking.EscrowStatus)
		assert.Equal(t, "MOCK1700000000000", booking.MpesaTransactionID)
		assert.Equal(t, booking.ID, receipt.BookingID)
		assert.Equal(t, int64(4550), receipt.TotalPaid)
		assert.Equal(t, "mpesa", receipt.PaymentMethod)
	})

	t.Run("Deposit Falls Back To Monthly Price", func(t *testing.T) {
		bookingRepo, _, roomRepo, hostelRepo, userRepo, noteRepo, paymentSvc, emailSvc, svc := newBookingFixture()

		noDeposit := &domain.Room{ID: "room-2", HostelID: "hostel-1", PricePerMonth: 6000, IsVacant: true}
		roomRepo.On("GetByID", ctx, "room-2").Return(noDeposit, nil)
		hostelRepo.On("GetByID", ctx, "hostel-1").Return(hostel, nil)
		paymentSvc.On("InitiateDeposit", ctx, "0712345678", int64(6050), mock.AnythingOfType("string")).
			Return(&service.PaymentResult{Success: true, TransactionID: "MOCK2"}, nil)
		bookingRepo.On("CreateInEscrow", ctx, mock.AnythingOfType("*domain.Booking"), mock.AnythingOfType("*domain.Receipt")).Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)
		userRepo.On("GetByID", ctx, "student-1").Return(&domain.User{ID: "student-1", Email: "student@test.com"}, nil)
		emailSvc.On("SendBookingConfirmation", ctx, "student@test.com", "Sunrise Hostel", int64(6050)).Return(nil)

		booking, _, err := svc.BookRoom(ctx, student, "room-2", "0712345678")
		assert.NoError(t, err)
		assert.Equal(t, int64(6000), booking.DepositAmount)
		assert.Equal(t, int64(6050), booking.PaymentAmount)
	})

	t.Run("Room Occupied Pre-Check", func(t *testing.T) {
		_, _, roomRepo, _, _, _, paymentSvc, _, svc := newBookingFixture()

		occupied := &domain.Room{ID: "room-3", HostelID: "hostel-1", DepositAmount: 4500, IsVacant: false}
		roomRepo.On("GetByID", ctx, "room-3").Return(occupied, nil)

		booking, receipt, err := svc.BookRoom(ctx, student, "room-3", "0712345678")
		assert.ErrorIs(t, err, domain.ErrRoomAlreadyBooked)
		assert.Nil(t, booking)
		assert.Nil(t, receipt)
		paymentSvc.AssertNotCalled(t, "InitiateDeposit")
	})

	t.Run("Lost Reservation Race", func(t *testing.T) {
		bookingRepo, _, roomRepo, hostelRepo, _, _, paymentSvc, _, svc := newBookingFixture()

		roomRepo.On("GetByID", ctx, "room-1").Return(room, nil)
		hostelRepo.On("GetByID", ctx, "hostel-1").Return(hostel, nil)
		paymentSvc.On("InitiateDeposit", ctx, "0712345678", int64(4550), mock.AnythingOfType("string")).
			Return(&service.PaymentResult{Success: true, TransactionID: "MOCK3"}, nil)
		bookingRepo.On("CreateInEscrow", ctx, mock.AnythingOfType("*domain.Booking"), mock.AnythingOfType("*domain.Receipt")).
			Return(domain.ErrRoomAlreadyBooked)

		_, _, err := svc.BookRoom(ctx, student, "room-1", "0712345678")
		assert.ErrorIs(t, err, domain.ErrRoomAlreadyBooked)
	})

	t.Run("Landlord Cannot Book", func(t *testing.T) {
		_, _, _, _, _, _, _, _, svc := newBookingFixture()

		landlord := domain.Identity{UserID: "landlord-1", Role: domain.RoleLandlord}
		_, _, err := svc.BookRoom(ctx, landlord, "room-1", "0712345678")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Payment Declined", func(t *testing.T) {
		bookingRepo, _, roomRepo, hostelRepo, _, _, paymentSvc, _, svc := newBookingFixture()

		roomRepo.On("GetByID", ctx, "room-1").Return(room, nil)
		hostelRepo.On("GetByID", ctx, "hostel-1").Return(hostel, nil)
		paymentSvc.On("InitiateDeposit", ctx, "", int64(4550), mock.AnythingOfType("string")).
			Return(&service.PaymentResult{Success: false, Message: "phone number is required for STK push"}, nil)

		_, _, err := svc.BookRoom(ctx, student, "room-1", "")
		assert.ErrorIs(t, err, service.ErrPaymentFailed)
		bookingRepo.AssertNotCalled(t, "CreateInEscrow")
	})
}

func TestBookingService_ConfirmRoom(t *testing.T) {
	ctx := context.Background()
	student := domain.Identity{UserID: "student-1", Role: domain.RoleStudent}

	held := &domain.Booking{
		ID:            "booking-1",
		StudentID:     "student-1",
		HostelID:      "hostel-1",
		DepositAmount: 4500,
		EscrowStatus:  domain.EscrowStatusHeld,
	}
	hostel := &domain.Hostel{ID: "hostel-1", LandlordID: "landlord-1", Name: "Sunrise Hostel"}

	t.Run("Student Confirmation Releases Deposit", func(t *testing.T) {
		bookingRepo, _, _, hostelRepo, _, noteRepo, _, _, svc := newBookingFixture()

		bookingRepo.On("GetByID", ctx, "booking-1").Return(held, nil).Once()
		hostelRepo.On("GetByID", ctx, "hostel-1").Return(hostel, nil)
		bookingRepo.On("Release", ctx, "booking-1", "landlord-1").Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		released := &domain.Booking{ID: "booking-1", StudentID: "student-1", HostelID: "hostel-1", EscrowStatus: domain.EscrowStatusReleased}
		bookingRepo.On("GetByID", ctx, "booking-1").Return(released, nil).Once()

		booking, err := svc.ConfirmRoom(ctx, student, "booking-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.EscrowStatusReleased, booking.EscrowStatus)
		bookingRepo.AssertNumberOfCalls(t, "Release", 1)
	})

	t.Run("Second Confirmation Is Stale", func(t *testing.T) {
		bookingRepo, _, _, hostelRepo, _, _, _, _, svc := newBookingFixture()

		released := &domain.Booking{ID: "booking-1", StudentID: "student-1", HostelID: "hostel-1", EscrowStatus: domain.EscrowStatusReleased}
		bookingRepo.On("GetByID", ctx, "booking-1").Return(released, nil)
		hostelRepo.On("GetByID", ctx, "hostel-1").Return(hostel, nil)
		bookingRepo.On("Release", ctx, "booking-1", "landlord-1").Return(domain.ErrStaleTransition)

		_, err := svc.ConfirmRoom(ctx, student, "booking-1")
		assert.ErrorIs(t, err, domain.ErrStaleTransition)
	})

	t.Run("Only Booking Owner Can Confirm", func(t *testing.T) {
		bookingRepo, _, _, _, _, _, _, _, svc := newBookingFixture()

		bookingRepo.On("GetByID", ctx, "booking-1").Return(held, nil)

		other := domain.Identity{UserID: "student-2", Role: domain.RoleStudent}
		_, err := svc.ConfirmRoom(ctx, other, "booking-1")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		bookingRepo.AssertNotCalled(t, "Release")
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctx := context.Background()
	student := domain.Identity{UserID: "student-1", Role: domain.RoleStudent}

	held := &domain.Booking{
		ID:            "booking-1",
		StudentID:     "student-1",
		HostelID:      "hostel-1",
		DepositAmount: 4500,
		EscrowStatus:  domain.EscrowStatusHeld,
	}
	hostel := &domain.Hostel{ID: "hostel-1", LandlordID: "landlord-1", Name: "Sunrise Hostel"}

	t.Run("Defaults Cancellation Reason", func(t *testing.T) {
		bookingRepo, _, _, hostelRepo, userRepo, noteRepo, _, emailSvc, svc := newBookingFixture()

		bookingRepo.On("GetByID", ctx, "booking-1").Return(held, nil)
		bookingRepo.On("Refund", ctx, "booking-1", "Student cancelled before confirmation").Return(nil)
		hostelRepo.On("GetByID", ctx, "hostel-1").Return(hostel, nil)
		userRepo.On("GetByID", ctx, "student-1").Return(&domain.User{ID: "student-1", Email: "student@test.com"}, nil)
		emailSvc.On("SendBookingCancellation", ctx, "student@test.com", "Sunrise Hostel", int64(4500)).Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		_, err := svc.CancelBooking(ctx, student, "booking-1", "")
		assert.NoError(t, err)
		bookingRepo.AssertCalled(t, "Refund", ctx, "booking-1", "Student cancelled before confirmation")
	})

	t.Run("Only Owner Can Cancel", func(t *testing.T) {
		bookingRepo, _, _, _, _, _, _, _, svc := newBookingFixture()

		bookingRepo.On("GetByID", ctx, "booking-1").Return(held, nil)

		other := domain.Identity{UserID: "student-2", Role: domain.RoleStudent}
		_, err := svc.CancelBooking(ctx, other, "booking-1", "")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		bookingRepo.AssertNotCalled(t, "Refund")
	})
}

func TestBookingService_RaiseDispute(t *testing.T) {
	ctx := context.Background()
	student := domain.Identity{UserID: "student-1", Role: domain.RoleStudent}

	held := &domain.Booking{ID: "booking-1", StudentID: "student-1", HostelID: "hostel-1", EscrowStatus: domain.EscrowStatusHeld}

	t.Run("Requires Reason", func(t *testing.T) {
		bookingRepo, _, _, _, _, _, _, _, svc := newBookingFixture()

		bookingRepo.On("GetByID", ctx, "booking-1").Return(held, nil)

		_, err := svc.RaiseDispute(ctx, student, "booking-1", "")
		assert.ErrorIs(t, err, service.ErrDisputeNeedsReason)
		bookingRepo.AssertNotCalled(t, "Dispute")
	})

	t.Run("Moves To Review", func(t *testing.T) {
		bookingRepo, _, _, _, _, noteRepo, _, _, svc := newBookingFixture()

		bookingRepo.On("GetByID", ctx, "booking-1").Return(held, nil).Once()
		bookingRepo.On("Dispute", ctx, "booking-1", "Room does not match photos").Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		reviewed := &domain.Booking{ID: "booking-1", StudentID: "student-1", HostelID: "hostel-1", EscrowStatus: domain.EscrowStatusReview}
		bookingRepo.On("GetByID", ctx, "booking-1").Return(reviewed, nil).Once()

		booking, err := svc.RaiseDispute(ctx, student, "booking-1", "Room does not match photos")
		assert.NoError(t, err)
		assert.Equal(t, domain.EscrowStatusReview, booking.EscrowStatus)
	})
}

func TestBookingService_ResolveDispute(t *testing.T) {
	ctx := context.Background()

	reviewed := &domain.Booking{ID: "booking-1", StudentID: "student-1", HostelID: "hostel-1", EscrowStatus: domain.EscrowStatusReview}
	hostel := &domain.Hostel{ID: "hostel-1", LandlordID: "landlord-1"}

	t.Run("Release To Landlord", func(t *testing.T) {
		bookingRepo, _, _, hostelRepo, _, noteRepo, _, _, svc := newBookingFixture()

		bookingRepo.On("GetByID", ctx, "booking-1").Return(reviewed, nil)
		hostelRepo.On("GetByID", ctx, "hostel-1").Return(hostel, nil)
		bookingRepo.On("ResolveRelease", ctx, "booking-1", "landlord-1", "Landlord provided evidence of move-in").Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		_, err := svc.ResolveDispute(ctx, "booking-1", true, "Landlord provided evidence of move-in")
		assert.NoError(t, err)
	})

	t.Run("Refund To Student", func(t *testing.T) {
		bookingRepo, _, _, _, _, noteRepo, _, _, svc := newBookingFixture()

		bookingRepo.On("GetByID", ctx, "booking-1").Return(reviewed, nil)
		bookingRepo.On("ResolveRefund", ctx, "booking-1", "Listing misrepresented the room").Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		_, err := svc.ResolveDispute(ctx, "booking-1", false, "Listing misrepresented the room")
		assert.NoError(t, err)
	})
}
