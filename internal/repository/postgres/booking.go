package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/repository"

	"github.com/google/uuid"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, student_id, hostel_id, room_id, deposit_amount, platform_fee, payment_amount, payment_status, escrow_status,
	COALESCE(mpesa_transaction_id, ''), booked_at, confirmed_at, cancelled_at,
	COALESCE(cancellation_reason, ''), COALESCE(dispute_reason, ''), COALESCE(admin_resolution, '')`

// CreateInEscrow inserts the booking and its receipt behind a
// conditional vacancy flip on the room. The UPDATE ... WHERE
// is_vacant = true is the compare-and-set that serializes concurrent
// reservation attempts: the loser sees zero affected rows and gets
// domain.ErrRoomAlreadyBooked without any partial write.
func (r *bookingRepository) CreateInEscrow(ctx context.Context, b *domain.Booking, rc *domain.Receipt) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if rc.ID == "" {
		rc.ID = uuid.NewString()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if b.RoomID != nil {
		res, err := tx.ExecContext(ctx,
			`UPDATE rooms SET is_vacant = false, updated_at = NOW() WHERE id = $1 AND is_vacant = true`, *b.RoomID)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrRoomAlreadyBooked
		}
	}

	insertBooking := `INSERT INTO bookings (id, student_id, hostel_id, room_id, deposit_amount, platform_fee, payment_amount, payment_status, escrow_status, mpesa_transaction_id, booked_at)
	                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW()) RETURNING booked_at`
	err = tx.QueryRowContext(ctx, insertBooking,
		b.ID, b.StudentID, b.HostelID, b.RoomID, b.DepositAmount, b.PlatformFee, b.PaymentAmount,
		b.PaymentStatus, domain.EscrowStatusHeld, b.MpesaTransactionID).Scan(&b.BookedAt)
	if err != nil {
		return err
	}
	b.EscrowStatus = domain.EscrowStatusHeld

	insertReceipt := `INSERT INTO receipts (id, booking_id, student_id, receipt_number, deposit_amount, platform_fee, total_paid, payment_method, status, issued_at)
	                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW()) RETURNING issued_at`
	err = tx.QueryRowContext(ctx, insertReceipt,
		rc.ID, b.ID, b.StudentID, rc.ReceiptNumber, b.DepositAmount, b.PlatformFee, b.PaymentAmount,
		rc.PaymentMethod, domain.ReceiptStatusDepositHeld).Scan(&rc.IssuedAt)
	if err != nil {
		return err
	}
	rc.Status = domain.ReceiptStatusDepositHeld

	return tx.Commit()
}

func (r *bookingRepository) Release(ctx context.Context, bookingID, landlordID string) error {
	return r.release(ctx, bookingID, landlordID, domain.EscrowStatusHeld, "")
}

func (r *bookingRepository) ResolveRelease(ctx context.Context, bookingID, landlordID, resolution string) error {
	return r.release(ctx, bookingID, landlordID, domain.EscrowStatusReview, resolution)
}

// release applies the wallet-crediting transition. The conditional
// UPDATE on escrow_status is what makes the credit idempotent per
// booking: a second attempt finds the row already moved and fails
// with domain.ErrStaleTransition before any ledger write.
func (r *bookingRepository) release(ctx context.Context, bookingID, landlordID string, from domain.EscrowStatus, resolution string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var deposit int64
	transition := `UPDATE bookings SET escrow_status = $1, confirmed_at = NOW(), admin_resolution = NULLIF($2, '')
	               WHERE id = $3 AND escrow_status = $4 RETURNING deposit_amount`
	err = tx.QueryRowContext(ctx, transition, domain.EscrowStatusReleased, resolution, bookingID, from).Scan(&deposit)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrStaleTransition
	}
	if err != nil {
		return err
	}

	// Lazy wallet creation on first credit.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO wallets (id, landlord_id, created_at) VALUES ($1, $2, NOW()) ON CONFLICT (landlord_id) DO NOTHING`,
		uuid.NewString(), landlordID)
	if err != nil {
		return err
	}

	var walletID string
	if err := tx.QueryRowContext(ctx, `SELECT id FROM wallets WHERE landlord_id = $1`, landlordID).Scan(&walletID); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO wallet_transactions (id, wallet_id, type, amount, description, created_at) VALUES ($1, $2, $3, $4, $5, NOW())`,
		uuid.NewString(), walletID, domain.TransactionTypeDepositRelease, deposit,
		fmt.Sprintf("Deposit released from booking %s", bookingID))
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE wallets SET balance = balance + $1, total_earned = total_earned + $1 WHERE id = $2`,
		deposit, walletID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE receipts SET status = $1 WHERE booking_id = $2`, domain.ReceiptStatusReleased, bookingID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *bookingRepository) Refund(ctx context.Context, bookingID, reason string) error {
	return r.refund(ctx, bookingID, reason, domain.EscrowStatusHeld, "")
}

func (r *bookingRepository) ResolveRefund(ctx context.Context, bookingID, resolution string) error {
	return r.refund(ctx, bookingID, "", domain.EscrowStatusReview, resolution)
}

func (r *bookingRepository) refund(ctx context.Context, bookingID, reason string, from domain.EscrowStatus, resolution string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var roomID sql.NullString
	transition := `UPDATE bookings SET escrow_status = $1, cancelled_at = NOW(), cancellation_reason = NULLIF($2, ''), admin_resolution = NULLIF($3, '')
	               WHERE id = $4 AND escrow_status = $5 RETURNING room_id`
	err = tx.QueryRowContext(ctx, transition, domain.EscrowStatusRefunded, reason, resolution, bookingID, from).Scan(&roomID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrStaleTransition
	}
	if err != nil {
		return err
	}

	if roomID.Valid {
		_, err = tx.ExecContext(ctx,
			`UPDATE rooms SET is_vacant = true, updated_at = NOW() WHERE id = $1`, roomID.String)
		if err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE receipts SET status = $1 WHERE booking_id = $2`, domain.ReceiptStatusRefunded, bookingID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *bookingRepository) Dispute(ctx context.Context, bookingID, reason string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET escrow_status = $1, dispute_reason = $2 WHERE id = $3 AND escrow_status = $4`,
		domain.EscrowStatusReview, reason, bookingID, domain.EscrowStatusHeld)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrStaleTransition
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return b, err
}

func (r *bookingRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE student_id = $1 ORDER BY booked_at DESC`
	return r.list(ctx, query, studentID)
}

func (r *bookingRepository) ListByHostel(ctx context.Context, hostelID string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE hostel_id = $1 ORDER BY booked_at DESC`
	return r.list(ctx, query, hostelID)
}

func (r *bookingRepository) ListHeldSince(ctx context.Context, olderThanDays int) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE escrow_status = $1 AND booked_at < NOW() - ($2 * INTERVAL '1 day') ORDER BY booked_at`
	return r.list(ctx, query, domain.EscrowStatusHeld, olderThanDays)
}

func (r *bookingRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.StudentID, &b.HostelID, &b.RoomID, &b.DepositAmount, &b.PlatformFee, &b.PaymentAmount,
		&b.PaymentStatus, &b.EscrowStatus, &b.MpesaTransactionID, &b.BookedAt, &b.ConfirmedAt, &b.CancelledAt,
		&b.CancellationReason, &b.DisputeReason, &b.AdminResolution)
	if err != nil {
		return nil, err
	}
	return b, nil
}
