// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging,
// CORS, body limits); AppConfig is everything specific to staffdesk.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Candidate collections for the employee record engine.
	// WriteCollections are probed (in order) to pick the write target;
	// LegacyCollections extend the read probing to historical names.
	WriteCollections  []string
	LegacyCollections []string

	// API authentication
	AuthTokenSecret string // HS256 secret for API bearer tokens; empty disables auth (dev only)

	// Identity provider (listing fallback)
	IDPEndpoint string // admin user-listing endpoint; empty disables the HTTP provider
	IDPToken    string // static bearer token for the endpoint

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host (empty = log-only stub)
	MailSMTPPort int
	MailSMTPUser string
	MailSMTPPass string
	MailFrom     string // From email address
	MailFromName string // From display name
	MailNotify   string // address notified on employee creation; empty disables

	// Base URL used in email links
	BaseURL string
}
