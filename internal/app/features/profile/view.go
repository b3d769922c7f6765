// internal/app/features/profile/view.go
package profile

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	"github.com/dalemusser/connecthub/internal/app/system/authz"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/dalemusser/connecthub/internal/app/system/viewdata"
	"github.com/dalemusser/connecthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

type profileData struct {
	viewdata.BaseVM

	User             models.User
	OrganizationName string
	OrganizationSlug string

	// HasPassword gates the password change section: accounts provisioned
	// through Google sign-in carry no hash to verify against.
	HasPassword bool

	Success string
}

// ServeProfile handles GET /profile.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		h.ErrLog.ServerError(w, r, "load own profile", err)
		return
	}

	data := profileData{
		BaseVM:      viewdata.NewBaseVM(r, "My Profile", "/"),
		User:        *user,
		HasPassword: user.PasswordHash != "",
	}

	if user.OrganizationID != nil {
		if org, err := h.Organizations.GetByID(ctx, *user.OrganizationID); err == nil {
			data.OrganizationName = org.Name
			data.OrganizationSlug = org.Slug
		}
	}

	switch r.URL.Query().Get("saved") {
	case "profile":
		data.Success = "Profile updated."
	case "password":
		data.Success = "Password changed."
	}

	templates.Render(w, r, "profile_view", data)
}
