package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/repository"
)

type plotRepository struct {
	db *sql.DB
}

func NewPlotRepository(db *sql.DB) repository.PlotRepository {
	return &plotRepository{db: db}
}

func (r *plotRepository) GetByPlotNumber(ctx context.Context, plotNumber string) (*domain.VerifiedPlot, error) {
	p := &domain.VerifiedPlot{}
	var verifiedAt time.Time
	query := `SELECT id, plot_number, location, owner_name, verified_at FROM verified_plots WHERE plot_number = $1`
	err := r.db.QueryRowContext(ctx, query, plotNumber).Scan(&p.ID, &p.PlotNumber, &p.Location, &p.OwnerName, &verifiedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.VerifiedAt = verifiedAt.Format(time.RFC3339)
	return p, nil
}
