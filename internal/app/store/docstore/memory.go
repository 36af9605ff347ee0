package docstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process Store used by tests and local development.
// Each instance is fully isolated; documents are deep-copied on the way in
// and out so callers cannot alias internal state.
type Memory struct {
	mu      sync.RWMutex
	colls   map[string]map[string]map[string]any
	noIndex map[string]bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		colls:   make(map[string]map[string]map[string]any),
		noIndex: make(map[string]bool),
	}
}

// FailOrderedList arms collection so that any ordered List returns
// ErrMissingIndex, mimicking a store that refuses to sort without an index.
func (m *Memory) FailOrderedList(collection string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.noIndex[collection] = true
}

// Seed inserts a document with a caller-chosen id, bypassing Add. Handy for
// fixtures that need stable identifiers across collections.
func (m *Memory) Seed(collection, id string, data map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.colls[collection] == nil {
		m.colls[collection] = make(map[string]map[string]any)
	}
	m.colls[collection][id] = copyDoc(data)
}

func (m *Memory) Get(_ context.Context, collection, id string) (map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.colls[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyDoc(doc), nil
}

func (m *Memory) Add(_ context.Context, collection string, data map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.colls[collection] == nil {
		m.colls[collection] = make(map[string]map[string]any)
	}
	id := uuid.NewString()
	m.colls[collection][id] = copyDoc(data)
	return id, nil
}

func (m *Memory) Set(_ context.Context, collection, id string, data map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.colls[collection] == nil {
		m.colls[collection] = make(map[string]map[string]any)
	}
	m.colls[collection][id] = copyDoc(data)
	return nil
}

func (m *Memory) Update(_ context.Context, collection, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.colls[collection][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		doc[k] = copyValue(v)
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.colls[collection][id]; !ok {
		return ErrNotFound
	}
	delete(m.colls[collection], id)
	return nil
}

func (m *Memory) List(_ context.Context, collection string, q Query) ([]Doc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if q.OrderBy != "" && m.noIndex[collection] {
		return nil, ErrMissingIndex
	}

	docs := make([]Doc, 0, len(m.colls[collection]))
	for id, data := range m.colls[collection] {
		docs = append(docs, Doc{ID: id, Data: copyDoc(data)})
	}

	// Secondary sort by id keeps listings deterministic for tests.
	sort.Slice(docs, func(i, j int) bool {
		if q.OrderBy != "" {
			ti, iok := docs[i].Data[q.OrderBy].(time.Time)
			tj, jok := docs[j].Data[q.OrderBy].(time.Time)
			switch {
			case iok && jok && !ti.Equal(tj):
				if q.Desc {
					return ti.After(tj)
				}
				return ti.Before(tj)
			case iok != jok:
				return iok // documents missing the field sort last
			}
		}
		return docs[i].ID < docs[j].ID
	})

	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

func copyDoc(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyDoc(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
