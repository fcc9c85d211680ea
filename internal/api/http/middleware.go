package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/logger"
	"hostellink-backend/internal/security"
)

type contextKey string

const identityKey contextKey = "identity"

// AuthMiddleware validates the bearer token and stores the caller's
// identity in the request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, security.ErrInvalidToken)
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, err)
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeError(w, security.ErrWrongTokenType)
			return
		}

		ident := domain.Identity{UserID: claims.UserID, Role: claims.Role}
		ctx := context.WithValue(r.Context(), identityKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFrom(r *http.Request) (domain.Identity, bool) {
	ident, ok := r.Context().Value(identityKey).(domain.Identity)
	return ident, ok
}

// RequestLogger logs each request with its duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
