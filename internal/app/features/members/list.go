// internal/app/features/members/list.go
package members

import (
	"context"
	"net/http"

	"github.com/dalemusser/connecthub/internal/app/directory"
	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	"github.com/dalemusser/connecthub/internal/app/system/authz"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/dalemusser/connecthub/internal/app/system/viewdata"
	"github.com/dalemusser/connecthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type listData struct {
	viewdata.BaseVM

	Tab     string
	Members []models.User
	Counts  directory.PartitionCounts
	CanEdit bool
}

// ServeList handles GET /members?tab=. The roster always computes the full
// partition; the tab only chooses which slice is shown, so the counts in
// the tab bar stay consistent with each other.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	view, err := h.Directory.Partition(ctx)
	if err != nil {
		h.Log.Warn("member roster unavailable", zap.Error(err))
		uierrors.RenderUnavailable(w, r, "/")
		return
	}

	tab := query.Get(r, "tab")
	var shown []models.User
	switch tab {
	case "affiliated":
		shown = view.Affiliated
	case "independent":
		shown = view.Unaffiliated
	default:
		tab = "all"
		shown = view.All
	}

	templates.Render(w, r, "members_list", listData{
		BaseVM:  viewdata.NewBaseVM(r, "Members", "/"),
		Tab:     tab,
		Members: shown,
		Counts:  view.Counts,
		CanEdit: authz.CanManageDirectory(r),
	})
}
