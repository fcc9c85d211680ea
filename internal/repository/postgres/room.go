package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

const roomColumns = `id, hostel_id, room_number, price_per_month, deposit_amount, is_vacant, images, COALESCE(description, ''), created_at, updated_at`

func (r *roomRepository) Create(ctx context.Context, rm *domain.Room) error {
	if rm.ID == "" {
		rm.ID = uuid.NewString()
	}
	query := `INSERT INTO rooms (id, hostel_id, room_number, price_per_month, deposit_amount, is_vacant, images, description, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`
	_, err := r.db.ExecContext(ctx, query, rm.ID, rm.HostelID, rm.RoomNumber, rm.PricePerMonth, rm.DepositAmount, rm.IsVacant, pq.Array(rm.Images), rm.Description)
	return err
}

func (r *roomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
	rm, err := scanRoom(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return rm, err
}

func (r *roomRepository) Update(ctx context.Context, rm *domain.Room) error {
	query := `UPDATE rooms SET room_number=$1, price_per_month=$2, deposit_amount=$3, images=$4, description=$5, updated_at=NOW() WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, rm.RoomNumber, rm.PricePerMonth, rm.DepositAmount, pq.Array(rm.Images), rm.Description, rm.ID)
	return err
}

func (r *roomRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	return err
}

func (r *roomRepository) ListByHostel(ctx context.Context, hostelID string) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE hostel_id = $1 ORDER BY room_number`
	rows, err := r.db.QueryContext(ctx, query, hostelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *rm)
	}
	return rooms, rows.Err()
}

func (r *roomRepository) SetVacant(ctx context.Context, roomID string, vacant bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE rooms SET is_vacant = $1, updated_at = NOW() WHERE id = $2`, vacant, roomID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	rm := &domain.Room{}
	var createdAt, updatedAt time.Time
	err := row.Scan(&rm.ID, &rm.HostelID, &rm.RoomNumber, &rm.PricePerMonth, &rm.DepositAmount, &rm.IsVacant, pq.Array(&rm.Images), &rm.Description, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	rm.CreatedAt = createdAt.Format(time.RFC3339)
	rm.UpdatedAt = updatedAt.Format(time.RFC3339)
	return rm, nil
}
