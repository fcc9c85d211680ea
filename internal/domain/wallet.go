package domain

import "time"

type TransactionType string

const (
	TransactionTypeDepositRelease TransactionType = "deposit_release"
	TransactionTypeWithdrawal     TransactionType = "withdrawal"
)

// Wallet holds a landlord's running balance of released deposits
// minus withdrawals. Created lazily on first access.
// Invariant: Balance == TotalEarned - TotalWithdrawn.
type Wallet struct {
	ID             string `json:"id"`
	LandlordID     string `json:"landlord_id"`
	Balance        int64  `json:"balance"`
	TotalEarned    int64  `json:"total_earned"`
	TotalWithdrawn int64  `json:"total_withdrawn"`
	CreatedAt      string `json:"created_at"`
}

// WalletTransaction is an append-only ledger row. Amount is positive
// for deposit releases and negative for withdrawals; the wallet's
// denormalized balance is a cached projection of the running sum.
type WalletTransaction struct {
	ID          string          `json:"id"`
	WalletID    string          `json:"wallet_id"`
	Type        TransactionType `json:"type"`
	Amount      int64           `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}
