// internal/app/features/members/create.go
package members

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/dalemusser/connecthub/internal/app/store/users"
	"github.com/dalemusser/connecthub/internal/app/system/formutil"
	"github.com/dalemusser/connecthub/internal/app/system/inputval"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/dalemusser/connecthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeNew handles GET /members/new.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	form := memberForm{IsNew: true, Role: "member"}
	formutil.SetBase(&form.Base, r, "New Member", "/members")

	orgs, err := h.Organizations.List(ctx)
	if err != nil {
		h.ErrLog.ServerError(w, r, "load organizations for member form", err)
		return
	}
	form.Organizations = orgs

	templates.Render(w, r, "member_form", form)
}

// HandleCreate handles POST /members.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.ServerError(w, r, "parse member form", err)
		return
	}

	form := readMemberForm(r)
	form.IsNew = true

	if errs := form.validate(true); errs.HasErrors() {
		h.rerenderForm(w, r, form, errs, "Please fix the highlighted fields.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Pre-check the email so the common case is a field error. The unique
	// index still guards the race with a concurrent insert.
	inUse, err := h.Users.EmailExistsForOther(ctx, form.Email, primitive.NilObjectID)
	if err != nil {
		h.ErrLog.ServerError(w, r, "check email availability", err)
		return
	}
	if inUse {
		var errs inputval.FieldErrors
		errs.Add("email", "A member with this email already exists.")
		h.rerenderForm(w, r, form, errs, "Please fix the highlighted fields.")
		return
	}

	u := models.User{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Email:       form.Email,
		Role:        form.Role,
		JobTitle:    form.JobTitle,
		ImageURL:    form.ImageURL,
		LinkedInURL: form.LinkedInURL,
		XURL:        form.XURL,
	}
	if form.OrganizationID != "" {
		orgID, _ := primitive.ObjectIDFromHex(form.OrganizationID)
		u.OrganizationID = &orgID
	}

	created, err := h.Users.Create(ctx, u)
	if errors.Is(err, userstore.ErrDuplicateEmail) {
		errs := form.validate(true)
		errs.Add("email", "A member with this email already exists.")
		h.rerenderForm(w, r, form, errs, "Please fix the highlighted fields.")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "create member", err)
		return
	}

	http.Redirect(w, r, "/members/"+created.ID.Hex(), http.StatusSeeOther)
}

func (h *Handler) rerenderForm(w http.ResponseWriter, r *http.Request, form memberForm, errs inputval.FieldErrors, msg string) {
	title := "Edit Member"
	if form.IsNew {
		title = "New Member"
	}
	formutil.SetBase(&form.Base, r, title, "/members")
	form.FieldErrors = errs
	form.SetError(msg)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()
	if orgs, err := h.Organizations.List(ctx); err == nil {
		form.Organizations = orgs
	}

	templates.Render(w, r, "member_form", form)
}
