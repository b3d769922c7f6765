// internal/app/features/organizations/delete.go
package organizations

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	"github.com/dalemusser/connecthub/internal/app/system/navigation"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleDelete handles POST /organizations/{slug}/delete. Members of the
// deleted organization become independent rather than dangling.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org, err := h.Organizations.GetBySlug(ctx, slug)
	if errors.Is(err, mongo.ErrNoDocuments) {
		uierrors.RenderNotFound(w, r, "That organization does not exist.", "/organizations")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "load organization for delete", err)
		return
	}

	deleted, err := h.Organizations.Delete(ctx, org.ID)
	if err != nil {
		h.ErrLog.ServerError(w, r, "delete organization", err)
		return
	}
	if deleted == 0 {
		uierrors.RenderNotFound(w, r, "That organization does not exist.", "/organizations")
		return
	}

	cleared, err := h.Users.ClearOrganization(ctx, org.ID)
	if err != nil {
		// The organization itself is already gone; log and continue.
		h.Log.Error("clear member affiliations after organization delete",
			zap.String("slug", slug), zap.Error(err))
	}

	h.Log.Info("organization deleted",
		zap.String("slug", slug),
		zap.Int64("members_cleared", cleared))

	// Deletes from a filtered listing go back to that listing view.
	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.OrganizationsBackURL), http.StatusSeeOther)
}
