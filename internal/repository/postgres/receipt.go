package postgres

import (
	"context"
	"database/sql"
	"errors"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/repository"
)

type receiptRepository struct {
	db *sql.DB
}

func NewReceiptRepository(db *sql.DB) repository.ReceiptRepository {
	return &receiptRepository{db: db}
}

const receiptColumns = `id, booking_id, student_id, receipt_number, deposit_amount, platform_fee, total_paid, payment_method, status, issued_at`

func (r *receiptRepository) GetByBooking(ctx context.Context, bookingID string) (*domain.Receipt, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+receiptColumns+` FROM receipts WHERE booking_id = $1`, bookingID)
	rc, err := scanReceipt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return rc, err
}

func (r *receiptRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE student_id = $1 ORDER BY issued_at DESC`
	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []domain.Receipt
	for rows.Next() {
		rc, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, *rc)
	}
	return receipts, rows.Err()
}

func scanReceipt(row rowScanner) (*domain.Receipt, error) {
	rc := &domain.Receipt{}
	err := row.Scan(&rc.ID, &rc.BookingID, &rc.StudentID, &rc.ReceiptNumber, &rc.DepositAmount, &rc.PlatformFee,
		&rc.TotalPaid, &rc.PaymentMethod, &rc.Status, &rc.IssuedAt)
	if err != nil {
		return nil, err
	}
	return rc, nil
}
