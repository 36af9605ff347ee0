// internal/app/features/employees/update.go
package employees

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/staffdesk/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleUpdate handles PUT /api/employees/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var in employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.Update(ctx, chi.URLParam(r, "id"), in.input())
	if err != nil {
		writeStoreError(w, h.Log, "employee update", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
