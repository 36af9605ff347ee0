// internal/app/features/employees/handler.go
package employees

import (
	employeestore "github.com/dalemusser/staffdesk/internal/app/store/employees"
	"github.com/dalemusser/staffdesk/internal/app/system/mailer"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for the employees API.
// It holds the record store, the mailer, and the logger wired in bootstrap.
type Handler struct {
	Store *employeestore.Store
	Mail  *mailer.Mailer
	Log   *zap.Logger

	// NotifyEmail, when set, receives a notification for every created
	// record. Delivery failures never fail the create.
	NotifyEmail string
	SiteName    string
	BaseURL     string
}

func NewHandler(store *employeestore.Store, mail *mailer.Mailer, notifyEmail, siteName, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		Store:       store,
		Mail:        mail,
		Log:         logger,
		NotifyEmail: notifyEmail,
		SiteName:    siteName,
		BaseURL:     baseURL,
	}
}
