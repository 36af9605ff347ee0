// Package identity exposes the external identity provider as a narrow
// collaborator: the record engine only needs the full user roster for its
// last-resort listing fallback.
package identity

import (
	"context"
	"time"
)

// User is one registered identity-provider account.
type User struct {
	UID              string
	DisplayName      string
	Email            string
	PhotoURL         string
	CustomAttributes map[string]any
	CreatedAt        time.Time
	LastSignInAt     time.Time
}

// Provider lists every registered user.
type Provider interface {
	ListUsers(ctx context.Context) ([]User, error)
}

// Static is a fixture-backed Provider for tests and local development.
type Static struct {
	Users []User
	Err   error
}

func (s *Static) ListUsers(context.Context) ([]User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]User{}, s.Users...), nil
}
