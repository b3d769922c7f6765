// internal/app/features/profile/edit.go
package profile

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	userstore "github.com/dalemusser/connecthub/internal/app/store/users"
	"github.com/dalemusser/connecthub/internal/app/system/authz"
	"github.com/dalemusser/connecthub/internal/app/system/formutil"
	"github.com/dalemusser/connecthub/internal/app/system/inputval"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
)

// profileForm backs the self-service edit screen. Email, role, and
// affiliation are not part of it; those are managed through the member
// admin screens.
type profileForm struct {
	formutil.Base

	FirstName   string `form:"first_name" label:"First name" validate:"required"`
	LastName    string `form:"last_name" label:"Last name" validate:"required"`
	JobTitle    string
	ImageURL    string `form:"image_url" label:"Image URL" validate:"httpurl"`
	LinkedInURL string `form:"linkedin_url" label:"LinkedIn URL" validate:"httpurl"`
	XURL        string `form:"x_url" label:"X URL" validate:"httpurl"`
}

func readProfileForm(r *http.Request) profileForm {
	return profileForm{
		FirstName:   strings.TrimSpace(r.FormValue("first_name")),
		LastName:    strings.TrimSpace(r.FormValue("last_name")),
		JobTitle:    strings.TrimSpace(r.FormValue("job_title")),
		ImageURL:    strings.TrimSpace(r.FormValue("image_url")),
		LinkedInURL: strings.TrimSpace(r.FormValue("linkedin_url")),
		XURL:        strings.TrimSpace(r.FormValue("x_url")),
	}
}

func (f *profileForm) validate() inputval.FieldErrors {
	return inputval.Validate(f).ByField()
}

// ServeEdit handles GET /profile/edit.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		h.ErrLog.ServerError(w, r, "load own profile for edit", err)
		return
	}

	form := profileForm{
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		JobTitle:    user.JobTitle,
		ImageURL:    user.ImageURL,
		LinkedInURL: user.LinkedInURL,
		XURL:        user.XURL,
	}
	formutil.SetBase(&form.Base, r, "Edit Profile", "/profile")

	templates.Render(w, r, "profile_form", form)
}

// HandleUpdate handles POST /profile.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.ServerError(w, r, "parse profile form", err)
		return
	}

	form := readProfileForm(r)
	if errs := form.validate(); errs.HasErrors() {
		formutil.SetBase(&form.Base, r, "Edit Profile", "/profile")
		form.FieldErrors = errs
		form.SetError("Please fix the highlighted fields.")
		templates.Render(w, r, "profile_form", form)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.Users.UpdateProfile(ctx, uid, userstore.ProfileUpdate{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		JobTitle:    form.JobTitle,
		ImageURL:    form.ImageURL,
		LinkedInURL: form.LinkedInURL,
		XURL:        form.XURL,
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "update own profile", err)
		return
	}

	http.Redirect(w, r, "/profile?saved=profile", http.StatusSeeOther)
}
