// internal/app/store/feedback/feedbackstore.go
package feedbackstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dalemusser/staffdesk/internal/app/store/docstore"
	"github.com/dalemusser/staffdesk/internal/app/system/htmlsanitize"
	"github.com/dalemusser/staffdesk/internal/app/system/normalize"
	"github.com/dalemusser/staffdesk/internal/domain/models"
)

// collection is fixed: feedback never suffered the schema drift employee
// records did, so no candidate probing is needed here.
const collection = "feedbacks"

// ValidationError rejects input missing a required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Store manages activity/feedback notes attached to employees.
type Store struct {
	db docstore.Store
}

// New creates a feedback Store.
func New(db docstore.Store) *Store {
	return &Store{db: db}
}

// Create sanitizes and stores one feedback note.
func (s *Store) Create(ctx context.Context, employeeID, kind, message, author string) (models.Feedback, error) {
	employeeID = normalize.Field(employeeID)
	kind = normalize.Field(kind)
	message = htmlsanitize.Sanitize(normalize.Field(message))

	switch {
	case employeeID == "":
		return models.Feedback{}, &ValidationError{Field: "employeeId"}
	case message == "":
		return models.Feedback{}, &ValidationError{Field: "message"}
	}
	if kind == "" {
		kind = "observacao"
	}

	now := time.Now().UTC()
	doc := map[string]any{
		"employeeId": employeeID,
		"kind":       kind,
		"message":    message,
		"author":     normalize.Field(author),
		"createdAt":  now,
	}
	id, err := s.db.Add(ctx, collection, doc)
	if err != nil {
		return models.Feedback{}, err
	}
	return models.Feedback{
		ID:         id,
		EmployeeID: employeeID,
		Kind:       kind,
		Message:    message,
		Author:     normalize.Field(author),
		CreatedAt:  now,
	}, nil
}

// List returns feedback newest-first, optionally restricted to one employee.
// An ordered fetch refused for want of an index is retried unordered and
// sorted here instead.
func (s *Store) List(ctx context.Context, employeeID string) ([]models.Feedback, error) {
	docs, err := s.db.List(ctx, collection, docstore.Query{OrderBy: "createdAt", Desc: true})
	if errors.Is(err, docstore.ErrMissingIndex) {
		docs, err = s.db.List(ctx, collection, docstore.Query{})
	}
	if err != nil {
		return nil, err
	}

	out := make([]models.Feedback, 0, len(docs))
	for _, d := range docs {
		f := mapFeedback(d)
		if employeeID != "" && f.EmployeeID != employeeID {
			continue
		}
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func mapFeedback(d docstore.Doc) models.Feedback {
	f := models.Feedback{ID: d.ID}
	if s, ok := d.Data["employeeId"].(string); ok {
		f.EmployeeID = s
	}
	if s, ok := d.Data["kind"].(string); ok {
		f.Kind = s
	}
	if s, ok := d.Data["message"].(string); ok {
		f.Message = s
	}
	if s, ok := d.Data["author"].(string); ok {
		f.Author = s
	}
	if t, ok := d.Data["createdAt"].(time.Time); ok {
		f.CreatedAt = t.UTC()
	}
	return f
}
