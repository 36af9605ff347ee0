// internal/app/features/employees/delete.go
package employees

import (
	"context"
	"net/http"

	"github.com/dalemusser/staffdesk/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleDelete handles DELETE /api/employees/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, h.Log, "employee delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
