package home

import (
	"context"
	"net/http"

	"github.com/dalemusser/connecthub/internal/app/directory"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/dalemusser/connecthub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the public landing page.
type Handler struct {
	Directory *directory.Service
	Log       *zap.Logger
}

func NewHandler(dir *directory.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Directory: dir,
		Log:       logger,
	}
}

type pageData struct {
	viewdata.BaseVM
	MemberCount int
	OrgCount    int
}

// ServeRoot handles GET /. The headline counts are best-effort; the page
// renders without them when the store is unreachable.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "Welcome", "/"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if view, err := h.Directory.Partition(ctx); err != nil {
		h.Log.Warn("landing counts unavailable", zap.Error(err))
	} else {
		data.MemberCount = view.Counts.Total
	}
	if orgs, err := h.Directory.Organizations(ctx); err == nil {
		data.OrgCount = len(orgs)
	}

	templates.Render(w, r, "home", data)
}
