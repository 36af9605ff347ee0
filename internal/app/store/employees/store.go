// internal/app/store/employees/store.go
//
// Employee records survived several app generations and live scattered
// across differently-named collections with differently-shaped documents.
// This store is the read-time reconciliation layer: it locates records
// across candidate collections, normalizes whatever shape it finds into the
// canonical Employee, and picks a single collection to write new records to.
package employeestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/staffdesk/internal/app/store/docstore"
	"github.com/dalemusser/staffdesk/internal/app/system/identity"
	"github.com/dalemusser/staffdesk/internal/app/system/normalize"
	"github.com/dalemusser/staffdesk/internal/domain/models"
	"go.uber.org/zap"
)

// ErrNotFound reports that an id exists in no candidate collection.
var ErrNotFound = errors.New("employee not found")

// ValidationError rejects input missing a required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Input carries the writable employee fields as received from the API.
type Input struct {
	FullName     string
	Registration string
	Role         string
	PhotoURL     string
}

// Store locates, lists, and writes employee records.
type Store struct {
	db  docstore.Store
	idp identity.Provider
	res *Resolver
	log *zap.Logger
}

// New builds a Store. The Resolver carries the process-wide caches and must
// be shared by every Store that serves the same process.
func New(db docstore.Store, idp identity.Provider, res *Resolver, logger *zap.Logger) *Store {
	return &Store{db: db, idp: idp, res: res, log: logger}
}

// Locate finds the record for id: cached collection first, then every read
// candidate in priority order. A stale cache entry is evicted and the probe
// continues; the cache is never authoritative. Store failures propagate.
func (s *Store) Locate(ctx context.Context, id string) (string, map[string]any, error) {
	if coll, ok := s.res.Lookup(id); ok {
		raw, err := s.db.Get(ctx, coll, id)
		switch {
		case err == nil:
			s.res.Remember(id, coll)
			return coll, raw, nil
		case errors.Is(err, docstore.ErrNotFound):
			s.res.Forget(id)
		default:
			return "", nil, err
		}
	}

	for _, coll := range s.res.ReadCandidates() {
		raw, err := s.db.Get(ctx, coll, id)
		if err == nil {
			s.res.Remember(id, coll)
			return coll, raw, nil
		}
		if !errors.Is(err, docstore.ErrNotFound) {
			return "", nil, err
		}
	}
	return "", nil, ErrNotFound
}

// Get returns the canonical record for id.
func (s *Store) Get(ctx context.Context, id string) (models.Employee, error) {
	_, raw, err := s.Locate(ctx, id)
	if err != nil {
		return models.Employee{}, err
	}
	return MapEmployee(raw, id), nil
}

// writeCollection resolves the collection new records are written to:
// the first write candidate with any existing content, else the first
// configured candidate. The answer is memoized for the process lifetime.
func (s *Store) writeCollection(ctx context.Context) (string, error) {
	if coll, ok := s.res.WriteTarget(); ok {
		return coll, nil
	}
	for _, coll := range s.res.WriteCandidates() {
		docs, err := s.db.List(ctx, coll, docstore.Query{Limit: 1})
		if err != nil {
			return "", err
		}
		if len(docs) > 0 {
			s.res.AdoptWriteTarget(coll)
			return coll, nil
		}
	}
	coll := s.res.WriteCandidates()[0]
	s.res.AdoptWriteTarget(coll)
	return coll, nil
}

func validate(in Input) (Input, error) {
	in.FullName = normalize.Name(in.FullName)
	in.Registration = normalize.Field(in.Registration)
	in.Role = normalize.Field(in.Role)
	in.PhotoURL = normalize.Field(in.PhotoURL)

	switch {
	case in.FullName == "":
		return in, &ValidationError{Field: "fullName"}
	case in.Registration == "":
		return in, &ValidationError{Field: "registrationId"}
	case in.Role == "":
		return in, &ValidationError{Field: "role"}
	}
	return in, nil
}

// Create inserts a new record into the resolved write collection.
func (s *Store) Create(ctx context.Context, in Input) (models.Employee, error) {
	in, err := validate(in)
	if err != nil {
		return models.Employee{}, err
	}

	coll, err := s.writeCollection(ctx)
	if err != nil {
		return models.Employee{}, err
	}

	now := time.Now().UTC()
	doc := map[string]any{
		"nome":      in.FullName,
		"matricula": in.Registration,
		"funcao":    in.Role,
		"createdAt": now,
		"updatedAt": now,
	}
	if in.PhotoURL != "" {
		doc["fotoUrl"] = in.PhotoURL
	}

	id, err := s.db.Add(ctx, coll, doc)
	if err != nil {
		s.log.Error("employee create failed", zap.String("collection", coll), zap.Error(err))
		return models.Employee{}, err
	}
	s.res.Remember(id, coll)
	return MapEmployee(doc, id), nil
}

// Update locates id and merges the writable fields into whichever
// collection the record actually lives in.
func (s *Store) Update(ctx context.Context, id string, in Input) (models.Employee, error) {
	in, err := validate(in)
	if err != nil {
		return models.Employee{}, err
	}

	coll, raw, err := s.Locate(ctx, id)
	if err != nil {
		return models.Employee{}, err
	}

	fields := map[string]any{
		"nome":      in.FullName,
		"matricula": in.Registration,
		"funcao":    in.Role,
		"fotoUrl":   in.PhotoURL,
		"updatedAt": time.Now().UTC(),
	}
	if err := s.db.Update(ctx, coll, id, fields); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			s.res.Forget(id)
			return models.Employee{}, ErrNotFound
		}
		s.log.Error("employee update failed", zap.String("collection", coll), zap.Error(err))
		return models.Employee{}, err
	}

	for k, v := range fields {
		raw[k] = v
	}
	return MapEmployee(raw, id), nil
}

// Delete removes id from its source collection and drops the cache entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	coll, _, err := s.Locate(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(ctx, coll, id); err != nil && !errors.Is(err, docstore.ErrNotFound) {
		s.log.Error("employee delete failed", zap.String("collection", coll), zap.Error(err))
		return err
	}
	s.res.Forget(id)
	return nil
}
