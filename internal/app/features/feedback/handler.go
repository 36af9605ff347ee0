// internal/app/features/feedback/handler.go
package feedback

import (
	feedbackstore "github.com/dalemusser/staffdesk/internal/app/store/feedback"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for employee feedback notes.
type Handler struct {
	Store *feedbackstore.Store
	Log   *zap.Logger
}

func NewHandler(store *feedbackstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}
