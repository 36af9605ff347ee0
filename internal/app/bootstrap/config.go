// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for staffdesk.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, write_collections, etc.
//   - Environment variables: STAFFDESK_MONGO_URI, STAFFDESK_WRITE_COLLECTIONS, etc.
//   - Command-line flags: --mongo_uri, --write_collections, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "staffdesk", Desc: "MongoDB database name"},

	// Employee record engine collections (comma-separated, priority order).
	// Blank falls back to the engine's built-in defaults.
	{Name: "write_collections", Default: "", Desc: "Write-candidate collections, priority order (comma-separated)"},
	{Name: "legacy_collections", Default: "", Desc: "Additional legacy read collections (comma-separated)"},

	// API authentication
	{Name: "auth_token_secret", Default: "", Desc: "HS256 secret for API bearer tokens (empty disables auth; dev only)"},

	// Identity provider fallback
	{Name: "idp_endpoint", Default: "", Desc: "Identity provider admin user-listing endpoint"},
	{Name: "idp_token", Default: "", Desc: "Bearer token for the identity provider endpoint"},

	// Email/SMTP configuration
	{Name: "mail_smtp_host", Default: "", Desc: "SMTP server host (empty = log-only stub)"},
	{Name: "mail_smtp_port", Default: 1025, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "noreply@staffdesk.local", Desc: "From email address"},
	{Name: "mail_from_name", Default: "StaffDesk", Desc: "From display name"},
	{Name: "mail_notify", Default: "", Desc: "Address notified when an employee is created (empty disables)"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL for email links"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "STAFFDESK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		WriteCollections:  splitList(appValues.String("write_collections")),
		LegacyCollections: splitList(appValues.String("legacy_collections")),

		AuthTokenSecret: appValues.String("auth_token_secret"),

		IDPEndpoint: appValues.String("idp_endpoint"),
		IDPToken:    appValues.String("idp_token"),

		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),
		MailNotify:   appValues.String("mail_notify"),

		BaseURL: appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// staffdesk validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect, and insists on an IDP token whenever
// an endpoint is configured.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.IDPEndpoint != "" && appCfg.IDPToken == "" {
		return fmt.Errorf("idp_endpoint is set but idp_token is empty")
	}
	if coreCfg.Env == "prod" && appCfg.AuthTokenSecret == "" {
		return fmt.Errorf("auth_token_secret must be set in production")
	}
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
