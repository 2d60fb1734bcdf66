package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// RequireToken verifies the Bearer token and adds the decoded claims to
// the request context.
func (h *Handlers) RequireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			WriteMessage(w, "unauthorized access", http.StatusUnauthorized)
			return
		}

		// Checking the "Bearer <token>" format
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			WriteMessage(w, "unauthorized access", http.StatusUnauthorized)
			return
		}

		claims, err := h.TokenService.Verify(parts[1])
		if err != nil {
			WriteMessage(w, "unauthorized access", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin checks the stored role of the authenticated caller. Use
// after RequireToken. Costs one user lookup per request.
func (h *Handlers) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := ClaimedEmail(r.Context())

		user, err := h.UserRepo.GetByEmail(r.Context(), email)
		if err != nil {
			WriteError(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if user == nil || user["role"] != "admin" {
			WriteMessage(w, "forbidden access", http.StatusForbidden)
			return
		}

		next(w, r)
	}
}

// ClaimsFromContext returns the decoded token claims, nil when the
// request did not pass RequireToken.
func ClaimsFromContext(ctx context.Context) jwt.MapClaims {
	claims, ok := ctx.Value(claimsContextKey).(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}

// ClaimedEmail returns the email claim of the authenticated caller.
func ClaimedEmail(ctx context.Context) string {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
