// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/connecthub/internal/app/system/auth"
	"github.com/dalemusser/connecthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

func basePageData(r *http.Request, title, msg, backURL string) pageData {
	u, signed := auth.CurrentUser(r)
	role, name := "", ""
	if signed && u != nil {
		role, name = u.Role, u.Name
	}
	return pageData{
		SiteName:   models.DefaultSiteName,
		Title:      title,
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	}
}

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it will default to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	w.WriteHeader(http.StatusUnauthorized)
	templates.Render(w, r, "error_forbidden",
		basePageData(r, "Sign in required", "Please sign in to continue.", backURL))
}

// RenderForbidden shows a friendly access error page with a message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	w.WriteHeader(http.StatusForbidden)
	templates.Render(w, r, "error_forbidden", basePageData(r, "Access denied", msg, backURL))
}

// RenderNotFound shows a friendly "not found" page.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_notfound", basePageData(r, "Not found", msg, backURL))
}

// RenderUnavailable shows the "directory unavailable" page used when the
// record store cannot be reached. Failures are never disguised as empty
// result pages.
func RenderUnavailable(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	templates.Render(w, r, "error_unavailable",
		basePageData(r, "Temporarily unavailable",
			"The directory can't be reached right now. Please try again shortly.", backURL))
}

// ErrorLogger renders server-error pages and records the underlying cause.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{log: logger}
}

// ServerError logs err with context and renders a friendly 500 page. The
// cause is never shown to the user.
func (e *ErrorLogger) ServerError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	e.log.Error("handler error",
		zap.String("operation", operation),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_server",
		basePageData(r, "Something went wrong",
			"An unexpected error occurred. Please try again.", "/"))
}
