package domain

import "time"

type ReceiptStatus string

const (
	ReceiptStatusDepositHeld ReceiptStatus = "deposit_held"
	ReceiptStatusReleased    ReceiptStatus = "released"
	ReceiptStatusRefunded    ReceiptStatus = "refunded"
)

// Receipt is an immutable payment record issued once per booking.
// Status is a snapshot of the escrow state, updated explicitly at
// each transition rather than derived from the booking.
type Receipt struct {
	ID            string        `json:"id"`
	BookingID     string        `json:"booking_id"`
	StudentID     string        `json:"student_id"`
	ReceiptNumber string        `json:"receipt_number"`
	DepositAmount int64         `json:"deposit_amount"`
	PlatformFee   int64         `json:"platform_fee"`
	TotalPaid     int64         `json:"total_paid"`
	PaymentMethod string        `json:"payment_method"`
	Status        ReceiptStatus `json:"status"`
	IssuedAt      time.Time     `json:"issued_at"`
}
