package service

import (
	"context"
	"errors"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/repository"
	"hostellink-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidRole        = errors.New("role must be student or landlord")
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Signup(ctx context.Context, fullName, email, phone, password string, role domain.Role) (*domain.User, string, string, error) {
	if role != domain.RoleStudent && role != domain.RoleLandlord {
		return nil, "", "", ErrInvalidRole
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", "", ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	// Role may have been corrected since the token was minted; always
	// re-read it from the role table.
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", err
	}
	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
