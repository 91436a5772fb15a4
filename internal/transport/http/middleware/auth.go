package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const AccountIDKey contextKey = "account_id"

func Auth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "Missing or invalid token")
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
				return []byte(jwtSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				unauthorized(w, "Invalid or expired token")
				return
			}

			sub, err := token.Claims.GetSubject()
			if err != nil {
				unauthorized(w, "Invalid token claims")
				return
			}
			accountID, err := uuid.Parse(sub)
			if err != nil {
				unauthorized(w, "Invalid account ID in token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccountID(r.Context(), accountID)))
		})
	}
}

func WithAccountID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, AccountIDKey, id)
}

// GetAccountID extracts the authenticated account from the request context.
func GetAccountID(ctx context.Context) uuid.UUID {
	return ctx.Value(AccountIDKey).(uuid.UUID)
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"` + message + `"}}`))
}
