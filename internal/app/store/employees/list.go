// internal/app/store/employees/list.go
package employeestore

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/dalemusser/staffdesk/internal/app/store/docstore"
	"github.com/dalemusser/staffdesk/internal/app/system/identity"
	"github.com/dalemusser/staffdesk/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// usersCollection holds per-user app documents keyed by lowercased email;
// the identity fallback mines it for roles.
const usersCollection = "users"

// List produces the canonical employee listing: every read candidate is
// fetched (concurrently), mapped, and merged by id in the fixed candidate
// order — for a duplicated id the later-probed collection wins. The merge
// order is the candidate order, never fetch completion order.
//
// If no collection yields anything, the listing falls back to the identity
// provider's user roster; a provider failure degrades to an empty list.
func (s *Store) List(ctx context.Context) ([]models.Employee, error) {
	colls := s.res.ReadCandidates()
	fetched := make([][]docstore.Doc, len(colls))
	errs := make([]error, len(colls))

	var wg sync.WaitGroup
	for i, coll := range colls {
		wg.Add(1)
		go func(i int, coll string) {
			defer wg.Done()
			fetched[i], errs[i] = s.fetchAll(ctx, coll)
		}(i, coll)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			s.log.Error("employee listing failed", zap.String("collection", colls[i]), zap.Error(err))
			return nil, err
		}
	}

	merged := make(map[string]models.Employee)
	for i, docs := range fetched {
		for _, d := range docs {
			merged[d.ID] = MapEmployee(d.Data, d.ID)
			s.res.Remember(d.ID, colls[i])
		}
	}

	if len(merged) == 0 {
		return s.listFromIdentity(ctx), nil
	}

	out := make([]models.Employee, 0, len(merged))
	for _, e := range merged {
		out = append(out, e)
	}
	sortEmployees(out)
	return out, nil
}

// fetchAll reads a whole collection newest-first. A store that cannot order
// without a missing index gets one unordered retry instead of failing the
// whole listing.
func (s *Store) fetchAll(ctx context.Context, coll string) ([]docstore.Doc, error) {
	docs, err := s.db.List(ctx, coll, docstore.Query{OrderBy: "createdAt", Desc: true})
	if errors.Is(err, docstore.ErrMissingIndex) {
		s.log.Warn("ordered fetch needs missing index, retrying unordered", zap.String("collection", coll))
		return s.db.List(ctx, coll, docstore.Query{})
	}
	return docs, err
}

// sortEmployees orders newest-first by createdAt; records without a valid
// timestamp sort after all that have one, tie-broken by locale-aware,
// case-insensitive name comparison.
func sortEmployees(list []models.Employee) {
	cl := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].CreatedAt, list[j].CreatedAt
		switch {
		case a != nil && b != nil:
			if !a.Equal(*b) {
				return a.After(*b)
			}
			return cl.CompareString(list[i].FullName, list[j].FullName) < 0
		case a != nil:
			return true
		case b != nil:
			return false
		default:
			return cl.CompareString(list[i].FullName, list[j].FullName) < 0
		}
	})
}

// listFromIdentity enumerates the identity provider's users, enriching each
// with a best-effort role. Provider failure is swallowed: the listing
// contract is best-effort visibility, never an error once we got here.
func (s *Store) listFromIdentity(ctx context.Context) []models.Employee {
	users, err := s.idp.ListUsers(ctx)
	if err != nil {
		s.log.Warn("identity fallback listing failed", zap.Error(err))
		return []models.Employee{}
	}

	out := make([]models.Employee, 0, len(users))
	for _, u := range users {
		e := models.Employee{
			ID:           u.UID,
			FullName:     FirstNonEmpty(u.DisplayName, u.Email),
			Registration: Sentinel,
			Role:         s.roleForUser(ctx, u),
		}
		if e.FullName == "" {
			e.FullName = NamePlaceholder
		}
		if u.PhotoURL != "" {
			photo := u.PhotoURL
			e.PhotoURL = &photo
		}
		if !u.CreatedAt.IsZero() {
			t := u.CreatedAt.UTC()
			e.CreatedAt = &t
		}
		if !u.LastSignInAt.IsZero() {
			t := u.LastSignInAt.UTC()
			e.UpdatedAt = &t
		}
		out = append(out, e)
	}
	sortEmployees(out)
	return out
}

// roleForUser tries the users collection (keyed by lowercased email) with
// the same priority search the mapper uses, then the provider's custom
// attributes funcao and role, then the sentinel.
func (s *Store) roleForUser(ctx context.Context, u identity.User) string {
	if email := strings.ToLower(strings.TrimSpace(u.Email)); email != "" {
		if raw, err := s.db.Get(ctx, usersCollection, email); err == nil {
			if role := extractRole(raw); role != "" {
				return role
			}
		}
	}
	if role := ExtractString(u.CustomAttributes["funcao"]); role != "" {
		return role
	}
	if role := ExtractString(u.CustomAttributes["role"]); role != "" {
		return role
	}
	return Sentinel
}
