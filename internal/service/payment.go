package service

import (
	"context"
	"fmt"
	"time"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/logger"
)

// mpesaMockService simulates an M-Pesa STK push that settles
// instantly. It validates inputs the way the real API would but never
// talks to Safaricom, so demos work without a paybill or callbacks.
type mpesaMockService struct{}

func NewMpesaMockService() PaymentService {
	return &mpesaMockService{}
}

func (s *mpesaMockService) InitiateDeposit(ctx context.Context, phoneNumber string, amount int64, bookingRef string) (*PaymentResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if phoneNumber == "" {
		return &PaymentResult{
			Success: false,
			Message: "phone number is required for STK push",
		}, nil
	}

	txID := fmt.Sprintf("MOCK%d", time.Now().UnixMilli())
	logger.Info("mock mpesa deposit settled",
		"transaction_id", txID,
		"booking_ref", bookingRef,
		"amount", amount)

	return &PaymentResult{
		Success:       true,
		TransactionID: txID,
		Message:       fmt.Sprintf("KSh %d received via M-Pesa", amount),
	}, nil
}
