package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"task-manager/backend/logging"
)

const (
	msgNoToken     = "Not authorized, no token"
	msgTokenFailed = "Not authorized, token failed"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenValidator returns the user id carried by a valid token.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

type AuthGate struct {
	tokens TokenValidator
}

func NewAuthGate(tokens TokenValidator) *AuthGate {
	return &AuthGate{tokens: tokens}
}

// Require rejects requests without a valid bearer token and stores the
// token subject on the request context.
func (g *AuthGate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenStr) == "" {
			logging.Logger.Warnf("Event ID: AUTH_MISSING_TOKEN, Description: No bearer token for %s %s", r.Method, r.URL.Path)
			unauthorized(w, msgNoToken)
			return
		}

		userID, err := g.tokens.ValidateToken(strings.TrimSpace(tokenStr))
		if err != nil {
			logging.Logger.Warnf("Event ID: AUTH_INVALID_TOKEN, Description: Token rejected for %s %s: %v", r.Method, r.URL.Path, err)
			unauthorized(w, msgTokenFailed)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
