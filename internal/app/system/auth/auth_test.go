package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/staffdesk/internal/app/system/auth"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const secret = "test-secret"

func signToken(t *testing.T, key, subject string, expires time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expires),
	})
	s, err := tok.SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func protected(t *testing.T, secret string) (http.Handler, *string) {
	t.Helper()
	var gotSubject string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = auth.Subject(r)
		w.WriteHeader(http.StatusOK)
	})
	return auth.RequireToken(secret, zap.NewNop())(inner), &gotSubject
}

func TestRequireToken_ValidToken(t *testing.T) {
	h, subject := protected(t, secret)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, secret, "maria@example.com", time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if *subject != "maria@example.com" {
		t.Errorf("subject = %q", *subject)
	}
}

func TestRequireToken_Rejections(t *testing.T) {
	h, _ := protected(t, secret)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not a bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong key", "Bearer " + signToken(t, "other-secret", "x", time.Now().Add(time.Hour))},
		{"expired", "Bearer " + signToken(t, secret, "x", time.Now().Add(-time.Hour))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestRequireToken_EmptySecretDisablesAuth(t *testing.T) {
	h, subject := protected(t, "")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want pass-through", rec.Code)
	}
	if *subject != "" {
		t.Errorf("subject = %q, want empty", *subject)
	}
}
