// internal/app/features/profile/password.go
package profile

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	"github.com/dalemusser/connecthub/internal/app/system/authz"
	"github.com/dalemusser/connecthub/internal/app/system/formutil"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type passwordForm struct {
	formutil.Base
}

// HandleChangePassword handles POST /profile/password. Only accounts
// that already hold a password hash can change it; Google-only accounts
// have nothing to verify the current password against.
func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.ServerError(w, r, "parse password form", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		h.ErrLog.ServerError(w, r, "load own profile for password change", err)
		return
	}

	if user.PasswordHash == "" {
		h.renderPasswordError(w, r, "Your account signs in with Google and has no password to change.")
		return
	}

	current := r.FormValue("current_password")
	next := r.FormValue("new_password")
	confirm := r.FormValue("confirm_password")

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		h.renderPasswordError(w, r, "Your current password is incorrect.")
		return
	}
	if len(next) < minPasswordLength {
		h.renderPasswordError(w, r, "New password must be at least 8 characters.")
		return
	}
	if next != confirm {
		h.renderPasswordError(w, r, "New passwords do not match.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		h.ErrLog.ServerError(w, r, "hash new password", err)
		return
	}
	if err := h.Users.UpdatePassword(ctx, uid, string(hash)); err != nil {
		h.ErrLog.ServerError(w, r, "store new password", err)
		return
	}

	http.Redirect(w, r, "/profile?saved=password", http.StatusSeeOther)
}

func (h *Handler) renderPasswordError(w http.ResponseWriter, r *http.Request, msg string) {
	form := passwordForm{}
	formutil.SetBase(&form.Base, r, "Change Password", "/profile")
	form.SetError(msg)
	templates.Render(w, r, "profile_password", form)
}
