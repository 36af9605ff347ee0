// internal/app/features/employees/list.go
package employees

import (
	"context"
	"net/http"

	"github.com/dalemusser/staffdesk/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// ServeList handles GET /api/employees.
// The listing probes every candidate collection, so it gets the long budget.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		writeStoreError(w, h.Log, "employee list", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// ServeGet handles GET /api/employees/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	e, err := h.Store.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, h.Log, "employee get", err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}
