package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pixelbeak/arcade/internal/api/apierr"
	"github.com/pixelbeak/arcade/internal/model"
	"github.com/pixelbeak/arcade/internal/services/token"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// Auth creates authentication middleware enforcing a bearer token.
// Verification is purely cryptographic; no storage is touched here.
func Auth(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractToken(r)
			if raw == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetClaims returns the verified token claims from the request context
func GetClaims(ctx context.Context) *token.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*token.Claims)
	return claims
}

// MustGetDeviceID returns the authenticated device ID or panics
func MustGetDeviceID(ctx context.Context) model.DeviceID {
	claims := GetClaims(ctx)
	if claims == nil {
		panic("no claims in context - auth middleware not applied?")
	}
	return claims.DeviceID
}
