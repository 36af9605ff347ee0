package docstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/staffdesk/internal/app/store/docstore"
)

func TestMemory_AddGet(t *testing.T) {
	m := docstore.NewMemory()
	ctx := context.Background()

	id, err := m.Add(ctx, "funcionarios", map[string]any{"nome": "Maria"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated id")
	}

	doc, err := m.Get(ctx, "funcionarios", id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if doc["nome"] != "Maria" {
		t.Errorf("nome = %v", doc["nome"])
	}

	if _, err := m.Get(ctx, "funcionarios", "nope"); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := m.Get(ctx, "outra", id); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("collections must be isolated, got %v", err)
	}
}

func TestMemory_UpdateMergesFields(t *testing.T) {
	m := docstore.NewMemory()
	ctx := context.Background()

	m.Seed("funcionarios", "e1", map[string]any{"nome": "Maria", "funcao": "fiscal"})

	if err := m.Update(ctx, "funcionarios", "e1", map[string]any{"funcao": "supervisor"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	doc, err := m.Get(ctx, "funcionarios", "e1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if doc["nome"] != "Maria" || doc["funcao"] != "supervisor" {
		t.Errorf("doc = %v", doc)
	}

	if err := m.Update(ctx, "funcionarios", "ghost", map[string]any{"x": 1}); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_Delete(t *testing.T) {
	m := docstore.NewMemory()
	ctx := context.Background()

	m.Seed("funcionarios", "e1", map[string]any{"nome": "Maria"})
	if err := m.Delete(ctx, "funcionarios", "e1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := m.Delete(ctx, "funcionarios", "e1"); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_DocumentsAreCopied(t *testing.T) {
	m := docstore.NewMemory()
	ctx := context.Background()

	original := map[string]any{"perfil": map[string]any{"funcao": "fiscal"}}
	m.Seed("funcionarios", "e1", original)
	original["perfil"].(map[string]any)["funcao"] = "mutated"

	doc, err := m.Get(ctx, "funcionarios", "e1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if doc["perfil"].(map[string]any)["funcao"] != "fiscal" {
		t.Error("seeded document aliases caller state")
	}

	// Mutating a returned document must not leak back either.
	doc["perfil"].(map[string]any)["funcao"] = "leaked"
	again, _ := m.Get(ctx, "funcionarios", "e1")
	if again["perfil"].(map[string]any)["funcao"] != "fiscal" {
		t.Error("returned document aliases internal state")
	}
}

func TestMemory_ListOrdering(t *testing.T) {
	m := docstore.NewMemory()
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	m.Seed("funcionarios", "b", map[string]any{"createdAt": base})
	m.Seed("funcionarios", "a", map[string]any{"createdAt": base.Add(time.Hour)})
	m.Seed("funcionarios", "c", map[string]any{"nome": "sem data"})

	docs, err := m.List(ctx, "funcionarios", docstore.Query{OrderBy: "createdAt", Desc: true})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	got := make([]string, len(docs))
	for i, d := range docs {
		got[i] = d.ID
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	limited, err := m.List(ctx, "funcionarios", docstore.Query{OrderBy: "createdAt", Desc: true, Limit: 1})
	if err != nil {
		t.Fatalf("limited List failed: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "a" {
		t.Errorf("limited = %v", limited)
	}
}

func TestMemory_FailOrderedList(t *testing.T) {
	m := docstore.NewMemory()
	ctx := context.Background()

	m.Seed("funcionarios", "a", map[string]any{"createdAt": time.Now()})
	m.FailOrderedList("funcionarios")

	if _, err := m.List(ctx, "funcionarios", docstore.Query{OrderBy: "createdAt"}); !errors.Is(err, docstore.ErrMissingIndex) {
		t.Errorf("expected ErrMissingIndex, got %v", err)
	}
	// Unordered listing still works on the armed collection.
	docs, err := m.List(ctx, "funcionarios", docstore.Query{})
	if err != nil || len(docs) != 1 {
		t.Errorf("unordered List = %v, %v", docs, err)
	}
}
