// internal/app/features/members/view.go
package members

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	"github.com/dalemusser/connecthub/internal/app/system/authz"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/dalemusser/connecthub/internal/app/system/viewdata"
	"github.com/dalemusser/connecthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type viewData struct {
	viewdata.BaseVM

	Member       models.User
	Organization *models.Organization
	CanEdit      bool
}

// ServeView handles GET /members/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
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
		h.ErrLog.ServerError(w, r, "load member", err)
		return
	}

	data := viewData{
		BaseVM:  viewdata.NewBaseVM(r, u.FullName(), "/members"),
		Member:  *u,
		CanEdit: authz.CanManageDirectory(r) || authz.IsSelf(r, u.ID),
	}

	if u.OrganizationID != nil {
		org, err := h.Organizations.GetByID(ctx, *u.OrganizationID)
		if err == nil {
			data.Organization = &org
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.ServerError(w, r, "load member organization", err)
			return
		}
	}

	templates.Render(w, r, "member_view", data)
}
