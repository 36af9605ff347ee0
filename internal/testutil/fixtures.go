package testutil

import (
	"testing"
	"time"

	"github.com/dalemusser/staffdesk/internal/app/store/docstore"
	"github.com/dalemusser/staffdesk/internal/app/system/identity"
)

// Fixtures seeds an in-memory document store with employee documents in the
// various shapes the record engine has to cope with.
type Fixtures struct {
	db *docstore.Memory
	t  *testing.T
}

// NewFixtures creates a Fixtures instance over db.
func NewFixtures(t *testing.T, db *docstore.Memory) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying store for direct access in tests.
func (f *Fixtures) DB() *docstore.Memory {
	return f.db
}

// SeedEmployee inserts a modern-shape employee document.
func (f *Fixtures) SeedEmployee(collection, id, name, registration, role string, createdAt time.Time) {
	f.t.Helper()
	f.db.Seed(collection, id, map[string]any{
		"nome":      name,
		"matricula": registration,
		"funcao":    role,
		"createdAt": createdAt.UTC(),
		"updatedAt": createdAt.UTC(),
	})
}

// SeedLegacyEmployee inserts a legacy-shape document: English field names,
// the role buried in a flags object, no timestamps.
func (f *Fixtures) SeedLegacyEmployee(collection, id, name, registration, role string) {
	f.t.Helper()
	f.db.Seed(collection, id, map[string]any{
		"name":         name,
		"registration": registration,
		"permissoes":   map[string]any{"funcao": map[string]any{role: true}},
	})
}

// SeedUserRole inserts a users-collection document keyed by lowercased
// email, the shape the identity fallback mines for roles.
func (f *Fixtures) SeedUserRole(email, role string) {
	f.t.Helper()
	f.db.Seed("users", email, map[string]any{
		"funcao": role,
	})
}

// IdentityUser builds a provider user for fallback tests.
func IdentityUser(uid, name, email string, created time.Time) identity.User {
	return identity.User{
		UID:         uid,
		DisplayName: name,
		Email:       email,
		CreatedAt:   created,
	}
}
