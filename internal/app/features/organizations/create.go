// internal/app/features/organizations/create.go
package organizations

import (
	"context"
	"errors"
	"net/http"

	organizationstore "github.com/dalemusser/connecthub/internal/app/store/organizations"
	"github.com/dalemusser/connecthub/internal/app/system/formutil"
	"github.com/dalemusser/connecthub/internal/app/system/inputval"
	"github.com/dalemusser/connecthub/internal/app/system/slugutil"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/dalemusser/connecthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeNew handles GET /organizations/new.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	form := orgForm{IsNew: true}
	formutil.SetBase(&form.Base, r, "New Organization", "/organizations")

	cats, err := h.Categories.List(ctx)
	if err != nil {
		h.ErrLog.ServerError(w, r, "load categories for organization form", err)
		return
	}
	form.Categories = cats

	templates.Render(w, r, "organization_form", form)
}

// HandleCreate handles POST /organizations. A blank slug is derived from
// the name.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.ServerError(w, r, "parse organization form", err)
		return
	}

	form := readOrgForm(r)
	form.IsNew = true
	if form.NewSlug == "" && form.Name != "" {
		form.NewSlug = slugutil.Generate(form.Name)
	}

	if errs := form.validate(); errs.HasErrors() {
		h.rerenderForm(w, r, form, errs, "Please fix the highlighted fields.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Pre-check the slug so the common case is a field error, not a
	// write failure. The unique index still guards the race with a
	// concurrent insert.
	taken, err := h.Organizations.SlugExistsForOther(ctx, form.NewSlug, primitive.NilObjectID)
	if err != nil {
		h.ErrLog.ServerError(w, r, "check slug availability", err)
		return
	}
	if taken {
		var errs inputval.FieldErrors
		errs.Add("slug", "This slug is already taken.")
		h.rerenderForm(w, r, form, errs, "Please fix the highlighted fields.")
		return
	}

	catID, _ := primitive.ObjectIDFromHex(form.CategoryID)
	org := models.Organization{
		Slug:        form.NewSlug,
		Name:        form.Name,
		Tagline:     form.Tagline,
		Description: form.Description,
		Phone:       form.Phone,
		Email:       form.Email,
		Website:     form.Website,
		CategoryID:  catID,
		Services:    form.services(),
	}

	created, err := h.Organizations.Create(ctx, org)
	if errors.Is(err, organizationstore.ErrSlugConflict) {
		var errs inputval.FieldErrors
		errs.Add("slug", "This slug is already taken.")
		h.rerenderForm(w, r, form, errs, "Please fix the highlighted fields.")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "create organization", err)
		return
	}

	http.Redirect(w, r, "/organizations/"+created.Slug, http.StatusSeeOther)
}

func (h *Handler) rerenderForm(w http.ResponseWriter, r *http.Request, form orgForm, errs inputval.FieldErrors, msg string) {
	title := "Edit Organization"
	backURL := "/organizations"
	if form.IsNew {
		title = "New Organization"
	} else if form.Slug != "" {
		backURL = "/organizations/" + form.Slug
	}
	formutil.SetBase(&form.Base, r, title, backURL)
	form.FieldErrors = errs
	form.SetError(msg)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()
	if cats, err := h.Categories.List(ctx); err == nil {
		form.Categories = cats
	}

	templates.Render(w, r, "organization_form", form)
}
