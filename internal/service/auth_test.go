package service_test

import (
	"context"
	"testing"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/security"
	"hostellink-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "unit-test-secret-0123456789abcdefghij"

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, 60, 10080)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "new@test.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, access, refresh, err := svc.Signup(ctx, "Jane Wanjiku", "new@test.com", "0712345678", "secret123", domain.RoleStudent)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, domain.RoleStudent, user.Role)
		// Password is stored hashed, never in the clear.
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
	})

	t.Run("Email Taken", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "taken@test.com").Return(&domain.User{ID: "user-1"}, nil)

		_, _, _, err := svc.Signup(ctx, "Jane", "taken@test.com", "", "secret123", domain.RoleStudent)
		assert.ErrorIs(t, err, service.ErrEmailTaken)
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Rejects Unknown Role", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		_, _, _, err := svc.Signup(ctx, "Jane", "new@test.com", "", "secret123", domain.Role("admin"))
		assert.ErrorIs(t, err, service.ErrInvalidRole)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, 60, 10080)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &domain.User{ID: "user-1", Email: "jane@test.com", PasswordHash: string(hash), Role: domain.RoleLandlord}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "jane@test.com").Return(user, nil)

		got, access, _, err := svc.Login(ctx, "jane@test.com", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", got.ID)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, domain.RoleLandlord, claims.Role)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "jane@test.com").Return(user, nil)

		_, _, _, err := svc.Login(ctx, "jane@test.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "nobody@test.com").Return(nil, domain.ErrNotFound)

		_, _, _, err := svc.Login(ctx, "nobody@test.com", "secret123")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, 60, 10080)

	user := &domain.User{ID: "user-1", Email: "jane@test.com", Role: domain.RoleStudent}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		refresh, err := tokens.GenerateRefreshToken("user-1", "jane@test.com")
		assert.NoError(t, err)

		userRepo.On("GetByID", ctx, "user-1").Return(user, nil)

		access, newRefresh, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, newRefresh)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleStudent, claims.Role)
	})

	t.Run("Rejects Access Token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		access, err := tokens.GenerateAccessToken("user-1", "jane@test.com", domain.RoleStudent)
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}
