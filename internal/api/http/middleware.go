package http

import (
	"context"
	"net/http"
	"strings"

	"sunlight-vm-backend/internal/security"
	"sunlight-vm-backend/internal/service"
	"sunlight-vm-backend/internal/state"
)

type contextKey string

const (
	claimsKey contextKey = "claims"
	storeKey  contextKey = "store"
)

// AuthMiddleware validates the bearer token, resolves the session's state
// store and injects both into the request context. A valid token whose
// session store is gone (server restart, logout elsewhere) is rejected so
// the client logs in again and rehydrates.
type AuthMiddleware struct {
	tokens   security.TokenManager
	sessions *state.Manager
	auth     service.AuthService
}

func NewAuthMiddleware(tokens security.TokenManager, sessions *state.Manager, auth service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, sessions: sessions, auth: auth}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "authorization token is not provided", "")
			return
		}
		token := header
		if len(token) > 7 && strings.EqualFold(token[0:7], "bearer ") {
			token = token[7:]
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token", "")
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeError(w, http.StatusUnauthorized, "wrong token type", "")
			return
		}

		st, ok := m.sessions.Get(claims.SessionID)
		if !ok {
			writeError(w, http.StatusUnauthorized, "session expired, log in again", "session_expired")
			return
		}

		m.auth.TouchSession(r.Context(), claims.SessionID)

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		ctx = context.WithValue(ctx, storeKey, st)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates the admin area.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFrom(r)
		if claims == nil || claims.Role != "ADMIN" {
			writeError(w, http.StatusForbidden, "admin role required", "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func ClaimsFrom(r *http.Request) *security.UserClaims {
	claims, _ := r.Context().Value(claimsKey).(*security.UserClaims)
	return claims
}

func StoreFrom(r *http.Request) *state.Store {
	st, _ := r.Context().Value(storeKey).(*state.Store)
	return st
}
