// internal/app/features/members/delete.go
package members

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	"github.com/dalemusser/connecthub/internal/app/system/navigation"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete handles POST /members/{id}/delete. Only users with the
// member role can be removed; admin accounts are never deleted here.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That member does not exist.", "/members")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Users.DeleteMember(ctx, id)
	if err != nil {
		h.ErrLog.ServerError(w, r, "delete member", err)
		return
	}
	if deleted == 0 {
		uierrors.RenderNotFound(w, r, "That member does not exist.", "/members")
		return
	}

	h.Log.Info("member deleted", zap.String("member_id", id.Hex()))

	// Deletes from a filtered roster go back to that roster view.
	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.MembersBackURL), http.StatusSeeOther)
}
