// internal/app/features/organizations/edit.go
package organizations

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	organizationstore "github.com/dalemusser/connecthub/internal/app/store/organizations"
	"github.com/dalemusser/connecthub/internal/app/system/formutil"
	"github.com/dalemusser/connecthub/internal/app/system/inputval"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/dalemusser/connecthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeEdit handles GET /organizations/{slug}/edit.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org, err := h.Organizations.GetBySlug(ctx, slug)
	if errors.Is(err, mongo.ErrNoDocuments) {
		uierrors.RenderNotFound(w, r, "That organization does not exist.", "/organizations")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "load organization for edit", err)
		return
	}

	form := orgForm{
		Slug:        org.Slug,
		Name:        org.Name,
		NewSlug:     org.Slug,
		Tagline:     org.Tagline,
		Description: org.Description,
		Phone:       org.Phone,
		Email:       org.Email,
		Website:     org.Website,
		CategoryID:  org.CategoryID.Hex(),
	}
	for _, svc := range org.Services {
		form.Services = append(form.Services, serviceForm{Name: svc.Name, Description: svc.Description})
	}
	formutil.SetBase(&form.Base, r, "Edit Organization", "/organizations/"+org.Slug)

	cats, err := h.Categories.List(ctx)
	if err != nil {
		h.ErrLog.ServerError(w, r, "load categories for organization form", err)
		return
	}
	form.Categories = cats

	templates.Render(w, r, "organization_form", form)
}

// HandleUpdate handles POST /organizations/{slug}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := r.ParseForm(); err != nil {
		h.ErrLog.ServerError(w, r, "parse organization form", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Organizations.GetBySlug(ctx, slug)
	if errors.Is(err, mongo.ErrNoDocuments) {
		uierrors.RenderNotFound(w, r, "That organization does not exist.", "/organizations")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "load organization for update", err)
		return
	}

	form := readOrgForm(r)
	form.Slug = existing.Slug
	if form.NewSlug == "" {
		form.NewSlug = existing.Slug
	}

	if errs := form.validate(); errs.HasErrors() {
		h.rerenderForm(w, r, form, errs, "Please fix the highlighted fields.")
		return
	}

	// Keeping the current slug is never a conflict; only a slug held by
	// some other organization is.
	taken, err := h.Organizations.SlugExistsForOther(ctx, form.NewSlug, existing.ID)
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
	updated := models.Organization{
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

	err = h.Organizations.Update(ctx, existing.ID, updated)
	if errors.Is(err, organizationstore.ErrSlugConflict) {
		var errs inputval.FieldErrors
		errs.Add("slug", "This slug is already taken.")
		h.rerenderForm(w, r, form, errs, "Please fix the highlighted fields.")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "update organization", err)
		return
	}

	http.Redirect(w, r, "/organizations/"+updated.Slug, http.StatusSeeOther)
}
