// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/connecthub/internal/app/directory"
	authgooglefeature "github.com/dalemusser/connecthub/internal/app/features/authgoogle"
	dashboardfeature "github.com/dalemusser/connecthub/internal/app/features/dashboard"
	discoverfeature "github.com/dalemusser/connecthub/internal/app/features/discover"
	errorsfeature "github.com/dalemusser/connecthub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/connecthub/internal/app/features/health"
	homefeature "github.com/dalemusser/connecthub/internal/app/features/home"
	loginfeature "github.com/dalemusser/connecthub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/connecthub/internal/app/features/logout"
	membersfeature "github.com/dalemusser/connecthub/internal/app/features/members"
	organizationsfeature "github.com/dalemusser/connecthub/internal/app/features/organizations"
	profilefeature "github.com/dalemusser/connecthub/internal/app/features/profile"
	categorystore "github.com/dalemusser/connecthub/internal/app/store/categories"
	organizationstore "github.com/dalemusser/connecthub/internal/app/store/organizations"
	"github.com/dalemusser/connecthub/internal/app/store/records"
	userstore "github.com/dalemusser/connecthub/internal/app/store/users"
	"github.com/dalemusser/connecthub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It creates the session manager, boots
// the template engine, builds the stores and the directory service on top
// of them, and mounts one router per feature.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(
		appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain,
		appCfg.SessionTTL, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Shared stores and the directory service built on them.
	users := userstore.New(deps.MongoDatabase)
	orgs := organizationstore.New(deps.MongoDatabase)
	cats := categorystore.New(deps.MongoDatabase)
	dir := directory.NewService(records.New(deps.MongoDatabase), logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	googleEnabled := appCfg.GoogleClientID != "" && appCfg.GoogleClientSecret != ""

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if signed in.
	r.Use(sessionMgr.LoadSessionUser)

	// Every form in the app carries a gorilla/csrf token.
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey),
		csrf.Secure(secure),
		csrf.Path("/")))

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli).
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages.
	homeHandler := homefeature.NewHandler(dir, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	discoverHandler := discoverfeature.NewHandler(dir, errLog, logger)
	r.Mount("/discover", discoverfeature.Routes(discoverHandler))

	organizationsHandler := organizationsfeature.NewHandler(orgs, cats, users, dir, errLog, logger)
	r.Mount("/organizations", organizationsfeature.Routes(organizationsHandler, sessionMgr))

	membersHandler := membersfeature.NewHandler(users, orgs, dir, errLog, logger)
	r.Mount("/members", membersfeature.Routes(membersHandler, sessionMgr))

	// Authentication.
	loginHandler := loginfeature.NewHandler(users, sessionMgr, errLog, googleEnabled, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	if googleEnabled {
		googleHandler := authgooglefeature.NewHandler(
			users, sessionMgr,
			appCfg.GoogleClientID, appCfg.GoogleClientSecret,
			appCfg.BaseURL, appCfg.OAuthStateKey, logger)
		r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))
	}

	// Error pages.
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.NotFound(errorsHandler.NotFound)

	// Signed-in areas.
	dashboardHandler := dashboardfeature.NewHandler(users, orgs, cats, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	profileHandler := profilefeature.NewHandler(users, orgs, errLog, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler, sessionMgr))

	return r, nil
}
