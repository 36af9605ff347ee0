// internal/app/features/employees/types.go
package employees

import (
	"encoding/json"
	"errors"
	"net/http"

	employeestore "github.com/dalemusser/staffdesk/internal/app/store/employees"
	"go.uber.org/zap"
)

// employeeRequest is the JSON body for create and update.
type employeeRequest struct {
	FullName     string `json:"fullName"`
	Registration string `json:"registrationId"`
	Role         string `json:"role"`
	PhotoURL     string `json:"photoUrl"`
}

func (in employeeRequest) input() employeestore.Input {
	return employeestore.Input{
		FullName:     in.FullName,
		Registration: in.Registration,
		Role:         in.Role,
		PhotoURL:     in.PhotoURL,
	}
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeStoreError translates store errors into HTTP responses: validation
// failures become 400 with the offending field, missing records 404, and
// anything else an opaque 500 (details go to the log, not the client).
func writeStoreError(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	var verr *employeestore.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error(), Field: verr.Field})
	case errors.Is(err, employeestore.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "employee not found"})
	default:
		log.Error(op+" failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
