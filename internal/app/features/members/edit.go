// internal/app/features/members/edit.go
package members

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	userstore "github.com/dalemusser/connecthub/internal/app/store/users"
	"github.com/dalemusser/connecthub/internal/app/system/formutil"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeEdit handles GET /members/{id}/edit.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That member does not exist.", "/members")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		uierrors.RenderNotFound(w, r, "That member does not exist.", "/members")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "load member for edit", err)
		return
	}

	form := memberForm{
		MemberID:    u.ID.Hex(),
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Role:        u.Role,
		JobTitle:    u.JobTitle,
		ImageURL:    u.ImageURL,
		LinkedInURL: u.LinkedInURL,
		XURL:        u.XURL,
	}
	if u.OrganizationID != nil {
		form.OrganizationID = u.OrganizationID.Hex()
	}
	formutil.SetBase(&form.Base, r, "Edit Member", "/members/"+u.ID.Hex())

	orgs, err := h.Organizations.List(ctx)
	if err != nil {
		h.ErrLog.ServerError(w, r, "load organizations for member form", err)
		return
	}
	form.Organizations = orgs

	templates.Render(w, r, "member_form", form)
}

// HandleUpdate handles POST /members/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That member does not exist.", "/members")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.ServerError(w, r, "parse member form", err)
		return
	}

	form := readMemberForm(r)
	form.MemberID = id.Hex()

	if errs := form.validate(false); errs.HasErrors() {
		h.rerenderForm(w, r, form, errs, "Please fix the highlighted fields.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	upd := userstore.ProfileUpdate{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		JobTitle:    form.JobTitle,
		ImageURL:    form.ImageURL,
		LinkedInURL: form.LinkedInURL,
		XURL:        form.XURL,
	}
	// The form always states the affiliation, so an empty value means
	// "clear it", not "leave it alone".
	if form.OrganizationID == "" {
		var clear *primitive.ObjectID
		upd.OrganizationID = &clear
	} else {
		orgID, _ := primitive.ObjectIDFromHex(form.OrganizationID)
		ref := &orgID
		upd.OrganizationID = &ref
	}

	if err := h.Users.UpdateProfile(ctx, id, upd); err != nil {
		h.ErrLog.ServerError(w, r, "update member", err)
		return
	}

	http.Redirect(w, r, "/members/"+id.Hex(), http.StatusSeeOther)
}
