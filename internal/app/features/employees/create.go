// internal/app/features/employees/create.go
package employees

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/staffdesk/internal/app/system/mailer"
	"github.com/dalemusser/staffdesk/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleCreate handles POST /api/employees.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, in.input())
	if err != nil {
		writeStoreError(w, h.Log, "employee create", err)
		return
	}

	if h.NotifyEmail != "" {
		email := mailer.BuildNewEmployeeEmail(mailer.NewEmployeeEmailData{
			SiteName:     h.SiteName,
			FullName:     created.FullName,
			Registration: created.Registration,
			Role:         created.Role,
			BaseURL:      h.BaseURL,
		})
		email.To = h.NotifyEmail
		if err := h.Mail.Send(email); err != nil {
			h.Log.Warn("new-employee notification failed", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusCreated, created)
}
