package service_test

import (
	"context"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Role), args.Error(1)
}

// MockHostelRepo
type MockHostelRepo struct {
	mock.Mock
}

func (m *MockHostelRepo) Create(ctx context.Context, hostel *domain.Hostel) error {
	args := m.Called(ctx, hostel)
	return args.Error(0)
}
func (m *MockHostelRepo) GetByID(ctx context.Context, id string) (*domain.Hostel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hostel), args.Error(1)
}
func (m *MockHostelRepo) Update(ctx context.Context, hostel *domain.Hostel) error {
	args := m.Called(ctx, hostel)
	return args.Error(0)
}
func (m *MockHostelRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Hostel, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Hostel), args.Get(1).(int32), args.Error(2)
}
func (m *MockHostelRepo) ListByLandlord(ctx context.Context, landlordID string) ([]domain.Hostel, error) {
	args := m.Called(ctx, landlordID)
	return args.Get(0).([]domain.Hostel), args.Error(1)
}

// MockRoomRepo
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRoomRepo) ListByHostel(ctx context.Context, hostelID string) ([]domain.Room, error) {
	args := m.Called(ctx, hostelID)
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomRepo) SetVacant(ctx context.Context, roomID string, vacant bool) error {
	args := m.Called(ctx, roomID, vacant)
	return args.Error(0)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) CreateInEscrow(ctx context.Context, booking *domain.Booking, receipt *domain.Receipt) error {
	args := m.Called(ctx, booking, receipt)
	return args.Error(0)
}
func (m *MockBookingRepo) Release(ctx context.Context, bookingID, landlordID string) error {
	args := m.Called(ctx, bookingID, landlordID)
	return args.Error(0)
}
func (m *MockBookingRepo) Refund(ctx context.Context, bookingID, reason string) error {
	args := m.Called(ctx, bookingID, reason)
	return args.Error(0)
}
func (m *MockBookingRepo) Dispute(ctx context.Context, bookingID, reason string) error {
	args := m.Called(ctx, bookingID, reason)
	return args.Error(0)
}
func (m *MockBookingRepo) ResolveRelease(ctx context.Context, bookingID, landlordID, resolution string) error {
	args := m.Called(ctx, bookingID, landlordID, resolution)
	return args.Error(0)
}
func (m *MockBookingRepo) ResolveRefund(ctx context.Context, bookingID, resolution string) error {
	args := m.Called(ctx, bookingID, resolution)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByStudent(ctx context.Context, studentID string) ([]domain.Booking, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByHostel(ctx context.Context, hostelID string) ([]domain.Booking, error) {
	args := m.Called(ctx, hostelID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListHeldSince(ctx context.Context, olderThanDays int) ([]domain.Booking, error) {
	args := m.Called(ctx, olderThanDays)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockReceiptRepo
type MockReceiptRepo struct {
	mock.Mock
}

func (m *MockReceiptRepo) GetByBooking(ctx context.Context, bookingID string) (*domain.Receipt, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}
func (m *MockReceiptRepo) ListByStudent(ctx context.Context, studentID string) ([]domain.Receipt, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

// MockWalletRepo
type MockWalletRepo struct {
	mock.Mock
}

func (m *MockWalletRepo) GetOrCreateByLandlord(ctx context.Context, landlordID string) (*domain.Wallet, error) {
	args := m.Called(ctx, landlordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}
func (m *MockWalletRepo) Withdraw(ctx context.Context, walletID string, amount int64, description string) error {
	args := m.Called(ctx, walletID, amount, description)
	return args.Error(0)
}
func (m *MockWalletRepo) ListTransactions(ctx context.Context, walletID string, limit int32) ([]domain.WalletTransaction, error) {
	args := m.Called(ctx, walletID, limit)
	return args.Get(0).([]domain.WalletTransaction), args.Error(1)
}
func (m *MockWalletRepo) Reconcile(ctx context.Context, walletID string) (int64, int64, error) {
	args := m.Called(ctx, walletID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}
func (m *MockWalletRepo) ListWalletIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

// MockPlotRepo
type MockPlotRepo struct {
	mock.Mock
}

func (m *MockPlotRepo) GetByPlotNumber(ctx context.Context, plotNumber string) (*domain.VerifiedPlot, error) {
	args := m.Called(ctx, plotNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerifiedPlot), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) InitiateDeposit(ctx context.Context, phoneNumber string, amount int64, bookingRef string) (*service.PaymentResult, error) {
	args := m.Called(ctx, phoneNumber, amount, bookingRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PaymentResult), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, email, hostelName string, amount int64) error {
	args := m.Called(ctx, email, hostelName, amount)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingCancellation(ctx context.Context, email, hostelName string, deposit int64) error {
	args := m.Called(ctx, email, hostelName, deposit)
	return args.Error(0)
}
func (m *MockEmailService) SendEscrowReminder(ctx context.Context, email, hostelName string, daysHeld int) error {
	args := m.Called(ctx, email, hostelName, daysHeld)
	return args.Error(0)
}
