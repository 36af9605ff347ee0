// internal/app/features/feedback/feedback.go
package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	feedbackstore "github.com/dalemusser/staffdesk/internal/app/store/feedback"
	"github.com/dalemusser/staffdesk/internal/app/system/auth"
	"github.com/dalemusser/staffdesk/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type feedbackRequest struct {
	EmployeeID string `json:"employeeId"`
	Kind       string `json:"kind"`
	Message    string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// ServeList handles GET /api/feedback?employeeId=…
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx, r.URL.Query().Get("employeeId"))
	if err != nil {
		h.Log.Error("feedback list failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// HandleCreate handles POST /api/feedback.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	author, _ := auth.Subject(r)
	created, err := h.Store.Create(ctx, in.EmployeeID, in.Kind, in.Message, author)
	if err != nil {
		var verr *feedbackstore.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error(), Field: verr.Field})
			return
		}
		h.Log.Error("feedback create failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
