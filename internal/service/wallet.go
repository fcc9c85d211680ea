package service

import (
	"context"
	"fmt"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/repository"
)

const maxTransactionPage = 20

type walletService struct {
	walletRepo repository.WalletRepository
}

func NewWalletService(walletRepo repository.WalletRepository) WalletService {
	return &walletService{walletRepo: walletRepo}
}

func (s *walletService) GetWallet(ctx context.Context, ident domain.Identity) (*domain.Wallet, error) {
	if !ident.IsLandlord() {
		return nil, domain.ErrUnauthorized
	}
	return s.walletRepo.GetOrCreateByLandlord(ctx, ident.UserID)
}

func (s *walletService) Withdraw(ctx context.Context, ident domain.Identity, amount int64) (*domain.Wallet, error) {
	if !ident.IsLandlord() {
		return nil, domain.ErrUnauthorized
	}
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	wallet, err := s.walletRepo.GetOrCreateByLandlord(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Withdrawal of KSh %d to M-Pesa", amount)
	if err := s.walletRepo.Withdraw(ctx, wallet.ID, amount, description); err != nil {
		return nil, err
	}

	return s.walletRepo.GetOrCreateByLandlord(ctx, ident.UserID)
}

func (s *walletService) ListTransactions(ctx context.Context, ident domain.Identity, limit int32) ([]domain.WalletTransaction, error) {
	if !ident.IsLandlord() {
		return nil, domain.ErrUnauthorized
	}
	if limit < 1 || limit > maxTransactionPage {
		limit = maxTransactionPage
	}
	wallet, err := s.walletRepo.GetOrCreateByLandlord(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	return s.walletRepo.ListTransactions(ctx, wallet.ID, limit)
}
