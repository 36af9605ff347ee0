// Package auth guards the JSON API with bearer tokens. Tokens are HS256
// JWTs signed with a shared secret from configuration; there are no browser
// sessions or cookies in this service.
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type ctxKey string

const subjectKey ctxKey = "authSubject"

// Subject returns the token subject injected by RequireToken, if any.
func Subject(r *http.Request) (string, bool) {
	s, ok := r.Context().Value(subjectKey).(string)
	return s, ok
}

// RequireToken returns middleware that rejects requests without a valid
// bearer token. An empty secret disables the check entirely (local dev);
// that state is logged loudly once at construction.
func RequireToken(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	if secret == "" {
		logger.Warn("auth token secret is empty; API authentication is DISABLED")
		return func(next http.Handler) http.Handler { return next }
	}
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			claims := jwt.RegisteredClaims{}
			tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return key, nil
			})
			if err != nil || !tok.Valid {
				logger.Debug("rejected API token", zap.Error(err))
				unauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
