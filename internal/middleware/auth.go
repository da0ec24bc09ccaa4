package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"mosaic-media/internal/auth"
)

type contextKey string

const claimsKey contextKey = "claims"

// ClaimsFromContext returns the bearer-token claims set by RequireAuth.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

func unauthorized(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}

// parseBearer validates an Authorization: Bearer header value and
// returns its claims, or an error message for the refusal envelope.
func parseBearer(secret []byte, header string) (*auth.Claims, string) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "invalid authorization header format"
	}
	claims, err := auth.ParseToken(secret, parts[1])
	if err != nil {
		return nil, "invalid or expired token"
	}
	return claims, ""
}

// RequireAuth validates the Authorization: Bearer header and stores the
// claims in the request context. The dashboard client treats any refusal
// as a redirect to the home page.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, http.StatusUnauthorized, "authorization header required")
				return
			}

			claims, msg := parseBearer(secret, header)
			if claims == nil {
				unauthorized(w, http.StatusUnauthorized, msg)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth stores claims in the request context when a bearer token
// is presented, and lets requests without one through anonymously. A
// token that is present but invalid is still refused. Mounted on the
// read endpoints the dashboard shares with the public site.
func OptionalAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, msg := parseBearer(secret, header)
			if claims == nil {
				unauthorized(w, http.StatusUnauthorized, msg)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin must be mounted after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil {
			unauthorized(w, http.StatusUnauthorized, "authorization required")
			return
		}
		if claims.Role != "admin" {
			unauthorized(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
