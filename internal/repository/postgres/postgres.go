package postgres

import (
	"database/sql"
	"hostellink-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.HostelRepository
	repository.RoomRepository
	repository.BookingRepository
	repository.ReceiptRepository
	repository.WalletRepository
	repository.PlotRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		HostelRepository:       NewHostelRepository(db),
		RoomRepository:         NewRoomRepository(db),
		BookingRepository:      NewBookingRepository(db),
		ReceiptRepository:      NewReceiptRepository(db),
		WalletRepository:       NewWalletRepository(db),
		PlotRepository:         NewPlotRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
