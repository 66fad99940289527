package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/BartokGyorgy07/webkert-insurance/internal/identity"
)

// TokenValidator validates a bearer token and yields its claims.
type TokenValidator interface {
	ValidateToken(tokenString string) (*identity.Claims, error)
}

// RequireAuth validates the Authorization bearer token and stores the owner
// id in the request context for identity.ContextProvider to pick up.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeAuthError(w, "missing bearer token")
				return
			}
			claims, err := validator.ValidateToken(token)
			if err != nil {
				if logger != nil {
					logger.DebugContext(r.Context(), "token rejected", "err", err)
				}
				writeAuthError(w, "invalid token")
				return
			}
			ctx := identity.WithOwner(r.Context(), claims.OwnerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             "unauthorized",
		"error_description": description,
	})
}
