// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	employeesfeature "github.com/dalemusser/staffdesk/internal/app/features/employees"
	feedbackfeature "github.com/dalemusser/staffdesk/internal/app/features/feedback"
	healthfeature "github.com/dalemusser/staffdesk/internal/app/features/health"
	"github.com/dalemusser/staffdesk/internal/app/store/docstore"
	employeestore "github.com/dalemusser/staffdesk/internal/app/store/employees"
	feedbackstore "github.com/dalemusser/staffdesk/internal/app/store/feedback"
	"github.com/dalemusser/staffdesk/internal/app/system/auth"
	"github.com/dalemusser/staffdesk/internal/app/system/identity"
	"github.com/dalemusser/staffdesk/internal/app/system/mailer"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. staffdesk wires the document store, the
// record engine's resolver (one per process — it owns the id→collection
// cache and the resolved write target), the identity-provider fallback, and
// mounts the JSON API behind the bearer-token middleware.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	store := docstore.NewMongo(deps.MongoDatabase)
	resolver := employeestore.NewResolver(appCfg.WriteCollections, appCfg.LegacyCollections)

	var idp identity.Provider = &identity.Static{}
	if appCfg.IDPEndpoint != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: appCfg.IDPToken})
		idp = identity.NewHTTPProvider(appCfg.IDPEndpoint, ts, logger)
	}

	employees := employeestore.New(store, idp, resolver, logger)
	feedbacks := feedbackstore.New(store)
	mail := mailer.New(appCfg.MailSMTPHost, appCfg.MailSMTPPort, appCfg.MailSMTPUser,
		appCfg.MailSMTPPass, appCfg.MailFrom, appCfg.MailFromName, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// JSON API, token-guarded
	requireToken := auth.RequireToken(appCfg.AuthTokenSecret, logger)
	r.Route("/api", func(api chi.Router) {
		api.Use(requireToken)

		employeesHandler := employeesfeature.NewHandler(employees, mail,
			appCfg.MailNotify, appCfg.MailFromName, appCfg.BaseURL, logger)
		api.Mount("/employees", employeesfeature.Routes(employeesHandler))

		feedbackHandler := feedbackfeature.NewHandler(feedbacks, logger)
		api.Mount("/feedback", feedbackfeature.Routes(feedbackHandler))
	})

	return r, nil
}
