// internal/app/store/employees/resolver.go
package employeestore

import "sync"

// Default candidate collection names. Write candidates are probed for the
// write target; read candidates add the legacy/alternate names older app
// versions wrote to.
var (
	DefaultWriteCollections  = []string{"funcionarios", "employees"}
	DefaultLegacyCollections = []string{"colaboradores", "staff", "equipe"}
)

// Resolver owns the process-wide mutable state of the record engine: the
// ordered candidate collection lists, the id→collection cache, and the
// memoized write target. Construct one per process (bootstrap) or one per
// test; there is no package-level state.
//
// The cache is a hint, never a source of truth: entries are verified by a
// live read on use and evicted when stale.
type Resolver struct {
	mu              sync.RWMutex
	writeCandidates []string
	readCandidates  []string
	byID            map[string]string
	writeTarget     string
}

// NewResolver builds a Resolver from the configured write candidates and
// legacy collection names. Empty slices fall back to the defaults. Both
// lists are deduplicated preserving first occurrence; the read-candidate
// order IS the merge precedence for listings (later wins).
func NewResolver(writeCollections, legacyCollections []string) *Resolver {
	if len(writeCollections) == 0 {
		writeCollections = DefaultWriteCollections
	}
	if legacyCollections == nil {
		legacyCollections = DefaultLegacyCollections
	}
	write := dedup(writeCollections)
	return &Resolver{
		writeCandidates: write,
		readCandidates:  dedup(append(append([]string{}, write...), legacyCollections...)),
		byID:            make(map[string]string),
	}
}

// WriteCandidates returns the ordered write-candidate collection names.
func (r *Resolver) WriteCandidates() []string {
	return append([]string{}, r.writeCandidates...)
}

// ReadCandidates returns the ordered read-candidate collection names.
func (r *Resolver) ReadCandidates() []string {
	return append([]string{}, r.readCandidates...)
}

// Lookup returns the cached collection for id, if any.
func (r *Resolver) Lookup(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	return c, ok
}

// Remember upserts the id→collection cache entry. If no write target has
// been resolved yet and collection is a write candidate, it is adopted
// immediately, saving the probing pass a read path already paid for.
func (r *Resolver) Remember(id, collection string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[id] = collection
	if r.writeTarget == "" {
		for _, c := range r.writeCandidates {
			if c == collection {
				r.writeTarget = collection
				break
			}
		}
	}
}

// Forget removes the cache entry for id.
func (r *Resolver) Forget(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}

// WriteTarget returns the resolved write collection, if resolved.
func (r *Resolver) WriteTarget() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.writeTarget, r.writeTarget != ""
}

// AdoptWriteTarget fixes the write collection for the process lifetime.
// Concurrent adopters racing to the same conclusion are benign.
func (r *Resolver) AdoptWriteTarget(collection string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writeTarget == "" {
		r.writeTarget = collection
	}
}

func dedup(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
