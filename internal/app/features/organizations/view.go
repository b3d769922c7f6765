// internal/app/features/organizations/view.go
package organizations

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	"github.com/dalemusser/connecthub/internal/app/system/authz"
	"github.com/dalemusser/connecthub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/dalemusser/connecthub/internal/app/system/viewdata"
	"github.com/dalemusser/connecthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

type viewData struct {
	viewdata.BaseVM

	Organization models.Organization
	Category     models.Category
	Description  template.HTML
	Members      []models.User
	CanEdit      bool
}

// ServeView handles GET /organizations/{slug}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org, err := h.Organizations.GetBySlug(ctx, slug)
	if errors.Is(err, mongo.ErrNoDocuments) {
		uierrors.RenderNotFound(w, r, "That organization does not exist.", "/organizations")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "load organization", err)
		return
	}

	data := viewData{
		BaseVM:       viewdata.NewBaseVM(r, org.Name, "/organizations"),
		Organization: org,
		Description:  htmlsanitize.PrepareForDisplay(org.Description),
		CanEdit:      authz.CanManageDirectory(r),
	}

	if cat, err := h.Categories.GetByID(ctx, org.CategoryID); err == nil {
		data.Category = cat
	}

	members, err := h.Users.ListByOrganization(ctx, org.ID)
	if err != nil {
		h.ErrLog.ServerError(w, r, "load organization members", err)
		return
	}
	data.Members = members

	templates.Render(w, r, "organization_view", data)
}
