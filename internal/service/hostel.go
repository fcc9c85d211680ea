package service

import (
	"context"
	"errors"
	"strings"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/repository"
)

var ErrPlotNotVerified = errors.New("plot number is not in the verification registry")

type hostelService struct {
	hostelRepo repository.HostelRepository
	roomRepo   repository.RoomRepository
	plotRepo   repository.PlotRepository
}

func NewHostelService(hostelRepo repository.HostelRepository, roomRepo repository.RoomRepository, plotRepo repository.PlotRepository) HostelService {
	return &hostelService{
		hostelRepo: hostelRepo,
		roomRepo:   roomRepo,
		plotRepo:   plotRepo,
	}
}

func (s *hostelService) CreateHostel(ctx context.Context, ident domain.Identity, h *domain.Hostel) error {
	if !ident.IsLandlord() {
		return domain.ErrUnauthorized
	}

	h.LandlordID = ident.UserID
	h.PlotNumber = strings.ToUpper(strings.TrimSpace(h.PlotNumber))

	verified, err := s.VerifyPlot(ctx, h.PlotNumber)
	if err != nil {
		return err
	}
	if !verified {
		return ErrPlotNotVerified
	}
	h.IsVerified = true

	return s.hostelRepo.Create(ctx, h)
}

func (s *hostelService) GetHostel(ctx context.Context, hostelID string) (*domain.Hostel, []domain.Room, error) {
	hostel, err := s.hostelRepo.GetByID(ctx, hostelID)
	if err != nil {
		return nil, nil, err
	}
	rooms, err := s.roomRepo.ListByHostel(ctx, hostelID)
	if err != nil {
		return nil, nil, err
	}
	return hostel, rooms, nil
}

func (s *hostelService) ListHostels(ctx context.Context, page, pageSize int32) ([]domain.Hostel, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 20
	}
	return s.hostelRepo.List(ctx, page, pageSize)
}

func (s *hostelService) ListMyHostels(ctx context.Context, ident domain.Identity) ([]domain.Hostel, error) {
	if !ident.IsLandlord() {
		return nil, domain.ErrUnauthorized
	}
	return s.hostelRepo.ListByLandlord(ctx, ident.UserID)
}

func (s *hostelService) VerifyPlot(ctx context.Context, plotNumber string) (bool, error) {
	_, err := s.plotRepo.GetByPlotNumber(ctx, strings.ToUpper(strings.TrimSpace(plotNumber)))
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *hostelService) AddRoom(ctx context.Context, ident domain.Identity, room *domain.Room) error {
	if err := s.requireOwnership(ctx, ident, room.HostelID); err != nil {
		return err
	}
	if room.DepositAmount == 0 {
		room.DepositAmount = room.PricePerMonth
	}
	room.IsVacant = true
	return s.roomRepo.Create(ctx, room)
}

func (s *hostelService) UpdateRoom(ctx context.Context, ident domain.Identity, room *domain.Room) error {
	existing, err := s.roomRepo.GetByID(ctx, room.ID)
	if err != nil {
		return err
	}
	if err := s.requireOwnership(ctx, ident, existing.HostelID); err != nil {
		return err
	}
	room.HostelID = existing.HostelID
	return s.roomRepo.Update(ctx, room)
}

func (s *hostelService) DeleteRoom(ctx context.Context, ident domain.Identity, roomID string) error {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if err := s.requireOwnership(ctx, ident, room.HostelID); err != nil {
		return err
	}
	return s.roomRepo.Delete(ctx, roomID)
}

func (s *hostelService) MarkRoomVacant(ctx context.Context, ident domain.Identity, roomID string) error {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if err := s.requireOwnership(ctx, ident, room.HostelID); err != nil {
		return err
	}
	return s.roomRepo.SetVacant(ctx, roomID, true)
}

func (s *hostelService) requireOwnership(ctx context.Context, ident domain.Identity, hostelID string) error {
	if !ident.IsLandlord() {
		return domain.ErrUnauthorized
	}
	hostel, err := s.hostelRepo.GetByID(ctx, hostelID)
	if err != nil {
		return err
	}
	if hostel.LandlordID != ident.UserID {
		return domain.ErrUnauthorized
	}
	return nil
}
