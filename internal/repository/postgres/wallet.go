package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/repository"

	"github.com/google/uuid"
)

type walletRepository struct {
	db *sql.DB
}

func NewWalletRepository(db *sql.DB) repository.WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) GetOrCreateByLandlord(ctx context.Context, landlordID string) (*domain.Wallet, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO wallets (id, landlord_id, created_at) VALUES ($1, $2, NOW()) ON CONFLICT (landlord_id) DO NOTHING`,
		uuid.NewString(), landlordID)
	if err != nil {
		return nil, err
	}

	w := &domain.Wallet{}
	var createdAt time.Time
	query := `SELECT id, landlord_id, balance, total_earned, total_withdrawn, created_at FROM wallets WHERE landlord_id = $1`
	err = r.db.QueryRowContext(ctx, query, landlordID).Scan(&w.ID, &w.LandlordID, &w.Balance, &w.TotalEarned, &w.TotalWithdrawn, &createdAt)
	if err != nil {
		return nil, err
	}
	w.CreatedAt = createdAt.Format(time.RFC3339)
	return w, nil
}

// Withdraw performs the debit as a conditional update so that two
// concurrent withdrawals cannot overdraw the balance: the losing
// update matches zero rows and the whole transaction rolls back.
func (r *walletRepository) Withdraw(ctx context.Context, walletID string, amount int64, description string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE wallets SET balance = balance - $1, total_withdrawn = total_withdrawn + $1 WHERE id = $2 AND balance >= $1`,
		amount, walletID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInsufficientBalance
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO wallet_transactions (id, wallet_id, type, amount, description, created_at) VALUES ($1, $2, $3, $4, $5, NOW())`,
		uuid.NewString(), walletID, domain.TransactionTypeWithdrawal, -amount, description)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *walletRepository) ListTransactions(ctx context.Context, walletID string, limit int32) ([]domain.WalletTransaction, error) {
	query := `SELECT id, wallet_id, type, amount, COALESCE(description, ''), created_at
	          FROM wallet_transactions WHERE wallet_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, walletID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.WalletTransaction
	for rows.Next() {
		var t domain.WalletTransaction
		if err := rows.Scan(&t.ID, &t.WalletID, &t.Type, &t.Amount, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// Reconcile returns the cached balance next to the authoritative
// running sum of the transaction log so callers can detect drift.
func (r *walletRepository) Reconcile(ctx context.Context, walletID string) (int64, int64, error) {
	var balance, ledgerSum int64
	query := `SELECT w.balance, COALESCE((SELECT SUM(t.amount) FROM wallet_transactions t WHERE t.wallet_id = w.id), 0)
	          FROM wallets w WHERE w.id = $1`
	err := r.db.QueryRowContext(ctx, query, walletID).Scan(&balance, &ledgerSum)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, domain.ErrNotFound
	}
	return balance, ledgerSum, err
}

func (r *walletRepository) ListWalletIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM wallets`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
