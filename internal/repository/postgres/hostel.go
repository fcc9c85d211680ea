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

type hostelRepository struct {
	db *sql.DB
}

func NewHostelRepository(db *sql.DB) repository.HostelRepository {
	return &hostelRepository{db: db}
}

const hostelColumns = `id, landlord_id, name, location, plot_number, COALESCE(description, ''), distance_from_gate, images, is_verified, created_at, updated_at`

func (r *hostelRepository) Create(ctx context.Context, h *domain.Hostel) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	query := `INSERT INTO hostels (id, landlord_id, name, location, plot_number, description, distance_from_gate, images, is_verified, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())`
	_, err := r.db.ExecContext(ctx, query, h.ID, h.LandlordID, h.Name, h.Location, h.PlotNumber, h.Description, h.DistanceFromGate, pq.Array(h.Images), h.IsVerified)
	return err
}

func (r *hostelRepository) GetByID(ctx context.Context, id string) (*domain.Hostel, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+hostelColumns+` FROM hostels WHERE id = $1`, id)
	h, err := scanHostel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return h, err
}

func (r *hostelRepository) Update(ctx context.Context, h *domain.Hostel) error {
	query := `UPDATE hostels SET name=$1, location=$2, description=$3, distance_from_gate=$4, images=$5, is_verified=$6, updated_at=NOW() WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, h.Name, h.Location, h.Description, h.DistanceFromGate, pq.Array(h.Images), h.IsVerified, h.ID)
	return err
}

func (r *hostelRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Hostel, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM hostels`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + hostelColumns + ` FROM hostels ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	hostels, err := collectHostels(rows)
	return hostels, count, err
}

func (r *hostelRepository) ListByLandlord(ctx context.Context, landlordID string) ([]domain.Hostel, error) {
	query := `SELECT ` + hostelColumns + ` FROM hostels WHERE landlord_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHostels(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHostel(row rowScanner) (*domain.Hostel, error) {
	h := &domain.Hostel{}
	var createdAt, updatedAt time.Time
	err := row.Scan(&h.ID, &h.LandlordID, &h.Name, &h.Location, &h.PlotNumber, &h.Description, &h.DistanceFromGate, pq.Array(&h.Images), &h.IsVerified, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	h.CreatedAt = createdAt.Format(time.RFC3339)
	h.UpdatedAt = updatedAt.Format(time.RFC3339)
	return h, nil
}

func collectHostels(rows *sql.Rows) ([]domain.Hostel, error) {
	var hostels []domain.Hostel
	for rows.Next() {
		h, err := scanHostel(rows)
		if err != nil {
			return nil, err
		}
		hostels = append(hostels, *h)
	}
	return hostels, rows.Err()
}
