package domain

import "time"

type EscrowStatus string

const (
	EscrowStatusPending  EscrowStatus = "pending"
	EscrowStatusHeld     EscrowStatus = "held_in_escrow"
	EscrowStatusReleased EscrowStatus = "released_to_landlord"
	EscrowStatusRefunded EscrowStatus = "refunded_to_student"
	EscrowStatusReview   EscrowStatus = "under_review"
)

// IsTerminal reports whether no further escrow transition is accepted
// from this state.
func (s EscrowStatus) IsTerminal() bool {
	return s == EscrowStatusReleased || s == EscrowStatusRefunded
}

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
)

type Booking struct {
	ID                 string       `json:"id"`
	StudentID          string       `json:"student_id"`
	HostelID           string       `json:"hostel_id"`
	RoomID             *string      `json:"room_id,omitempty"` // nil for legacy whole-hostel bookings
	DepositAmount      int64        `json:"deposit_amount"`
	PlatformFee        int64        `json:"platform_fee"`
	// PaymentAmount = DepositAmount + PlatformFee, fixed at creation.
	PaymentAmount      int64         `json:"payment_amount"`
	PaymentStatus      PaymentStatus `json:"payment_status"`
	EscrowStatus       EscrowStatus  `json:"escrow_status"`
	MpesaTransactionID string        `json:"mpesa_transaction_id"`
	BookedAt           time.Time     `json:"booked_at"`
	ConfirmedAt        *time.Time    `json:"confirmed_at,omitempty"`
	CancelledAt        *time.Time    `json:"cancelled_at,omitempty"`
	CancellationReason string        `json:"cancellation_reason,omitempty"`
	DisputeReason      string        `json:"dispute_reason,omitempty"`
	AdminResolution    string        `json:"admin_resolution,omitempty"`
}
