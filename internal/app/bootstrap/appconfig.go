// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings like HTTP ports, TLS, and log level; AppConfig
// carries everything specific to ConnectHub.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions
	SessionDomain string        // Cookie domain (blank means current host)
	SessionTTL    time.Duration // How long a signed-in session stays valid

	// CSRFKey signs the gorilla/csrf tokens embedded in every form.
	CSRFKey string

	// BaseURL is the externally visible origin, used to build the Google
	// OAuth callback URL.
	BaseURL string

	// Google OAuth configuration. Password sign-in always works; Google
	// sign-in is offered only when both values are set.
	GoogleClientID     string
	GoogleClientSecret string
	OAuthStateKey      string // signs the OAuth state cookie

	// AdminEmail names the account promoted to (or created as) the
	// directory admin on startup, so a fresh deployment is reachable.
	AdminEmail string
}
