package employeestore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/staffdesk/internal/app/store/docstore"
	employeestore "github.com/dalemusser/staffdesk/internal/app/store/employees"
	"github.com/dalemusser/staffdesk/internal/app/system/identity"
	"github.com/dalemusser/staffdesk/internal/testutil"
	"go.uber.org/zap"
)

func newListStore(t *testing.T, idp identity.Provider) (*employeestore.Store, *testutil.Fixtures) {
	t.Helper()
	db := docstore.NewMemory()
	res := employeestore.NewResolver(nil, nil)
	return employeestore.New(db, idp, res, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestList_MergesAcrossCollections(t *testing.T) {
	store, fixtures := newListStore(t, &identity.Static{})
	ctx := context.Background()

	fixtures.SeedEmployee("funcionarios", "a", "Ana", "1", "fiscal", time.Now())
	fixtures.SeedLegacyEmployee("colaboradores", "b", "Bruno", "2", "supervisor")
	fixtures.SeedLegacyEmployee("staff", "c", "Carla", "3", "chefe")

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d employees, want 3", len(list))
	}

	byID := make(map[string]string, len(list))
	for _, e := range list {
		byID[e.ID] = e.FullName
	}
	for id, want := range map[string]string{"a": "Ana", "b": "Bruno", "c": "Carla"} {
		if byID[id] != want {
			t.Errorf("employee %s = %q, want %q", id, byID[id], want)
		}
	}
}

func TestList_DuplicateIDLaterCollectionWins(t *testing.T) {
	store, fixtures := newListStore(t, &identity.Static{})
	ctx := context.Background()

	fixtures.SeedEmployee("funcionarios", "dup", "Primeira", "1", "fiscal", time.Now())
	fixtures.SeedLegacyEmployee("colaboradores", "dup", "Segunda", "1", "fiscal")

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d employees, want 1", len(list))
	}
	if list[0].FullName != "Segunda" {
		t.Errorf("FullName = %q, want the later-probed collection's record", list[0].FullName)
	}
}

func TestList_SortOrder(t *testing.T) {
	store, fixtures := newListStore(t, &identity.Static{})
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	fixtures.SeedEmployee("funcionarios", "old", "Antiga", "1", "fiscal", base)
	fixtures.SeedEmployee("funcionarios", "new", "Nova", "2", "fiscal", base.Add(24*time.Hour))
	// Same timestamp pair: locale name comparison breaks the tie.
	fixtures.SeedEmployee("funcionarios", "tie-b", "Bruno", "3", "fiscal", base.Add(time.Hour))
	fixtures.SeedEmployee("funcionarios", "tie-a", "Álvaro", "4", "fiscal", base.Add(time.Hour))
	// No timestamp at all: sorts after everything dated.
	fixtures.SeedLegacyEmployee("colaboradores", "undated", "Zulmira", "5", "fiscal")

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	got := make([]string, len(list))
	for i, e := range list {
		got[i] = e.ID
	}
	want := []string{"new", "tie-a", "tie-b", "old", "undated"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestList_MissingIndexRetriesUnordered(t *testing.T) {
	store, fixtures := newListStore(t, &identity.Static{})
	ctx := context.Background()

	fixtures.SeedEmployee("funcionarios", "a", "Ana", "1", "fiscal", time.Now())
	fixtures.DB().FailOrderedList("funcionarios")

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed despite unordered retry: %v", err)
	}
	if len(list) != 1 || list[0].FullName != "Ana" {
		t.Errorf("list = %+v", list)
	}
}

func TestList_PrimesLocationCache(t *testing.T) {
	db := docstore.NewMemory()
	res := employeestore.NewResolver(nil, nil)
	store := employeestore.New(db, &identity.Static{}, res, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)

	fixtures.SeedLegacyEmployee("staff", "s1", "Sofia", "9", "fiscal")

	if _, err := store.List(context.Background()); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if coll, ok := res.Lookup("s1"); !ok || coll != "staff" {
		t.Errorf("cache entry after List = %q, %v", coll, ok)
	}
}

func TestList_IdentityFallback(t *testing.T) {
	created := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	idp := &identity.Static{Users: []identity.User{
		testutil.IdentityUser("u1", "Maria Souza", "maria@example.com", created),
		{UID: "u2", Email: "jose@example.com", CreatedAt: created.Add(-time.Hour)},
		{UID: "u3", CustomAttributes: map[string]any{"funcao": "supervisor"}},
	}}
	store, fixtures := newListStore(t, idp)

	// Role for maria comes from the users collection, keyed by email.
	fixtures.SeedUserRole("maria@example.com", "fiscal")

	list, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d employees, want 3", len(list))
	}

	byID := make(map[string]int, len(list))
	for i, e := range list {
		byID[e.ID] = i
	}

	maria := list[byID["u1"]]
	if maria.FullName != "Maria Souza" || maria.Role != "fiscal" {
		t.Errorf("maria = %+v", maria)
	}
	if maria.Registration != employeestore.Sentinel {
		t.Errorf("Registration = %q, want sentinel", maria.Registration)
	}

	// No display name: the email stands in.
	jose := list[byID["u2"]]
	if jose.FullName != "jose@example.com" {
		t.Errorf("jose FullName = %q", jose.FullName)
	}
	if jose.Role != employeestore.Sentinel {
		t.Errorf("jose Role = %q, want sentinel", jose.Role)
	}

	// No name at all: placeholder; role from custom attributes.
	anon := list[byID["u3"]]
	if anon.FullName != employeestore.NamePlaceholder {
		t.Errorf("anon FullName = %q", anon.FullName)
	}
	if anon.Role != "supervisor" {
		t.Errorf("anon Role = %q", anon.Role)
	}
}

func TestList_IdentityFallbackSkippedWhenRecordsExist(t *testing.T) {
	idp := &identity.Static{Users: []identity.User{
		testutil.IdentityUser("u1", "Fantasma", "ghost@example.com", time.Now()),
	}}
	store, fixtures := newListStore(t, idp)

	fixtures.SeedEmployee("funcionarios", "e1", "Real", "1", "fiscal", time.Now())

	list, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != "e1" {
		t.Errorf("list = %+v, want only the stored record", list)
	}
}

func TestList_IdentityProviderErrorYieldsEmptyList(t *testing.T) {
	idp := &identity.Static{Err: errors.New("provider down")}
	store, _ := newListStore(t, idp)

	list, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("provider failure must not surface: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("list = %+v, want empty", list)
	}
}
