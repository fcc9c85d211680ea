package domain

import "errors"

// Typed rejections surfaced by the storage layer's atomicity
// guarantees. The HTTP layer maps them to user-visible messages;
// anything else is treated as a retryable storage failure.
var (
	// ErrRoomAlreadyBooked: the vacancy compare-and-set lost a race
	// with a concurrent reservation on the same room.
	ErrRoomAlreadyBooked = errors.New("room already booked")

	// ErrStaleTransition: an escrow action asserted a prior state the
	// booking is no longer in (e.g. a second confirm).
	ErrStaleTransition = errors.New("booking already finalized")

	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")

	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)
