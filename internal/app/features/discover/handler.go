// internal/app/features/discover/handler.go
package discover

import (
	"context"
	"net/http"

	"github.com/dalemusser/connecthub/internal/app/directory"
	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/dalemusser/connecthub/internal/app/system/viewdata"
	"github.com/dalemusser/connecthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the directory search page.
type Handler struct {
	Directory *directory.Service
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
}

func NewHandler(dir *directory.Service, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Directory: dir,
		ErrLog:    errLog,
		Log:       logger,
	}
}

// pageData renders exactly one of three result shapes: member hits,
// organization hits, or the default partitioned member view.
type pageData struct {
	viewdata.BaseVM

	Query     string
	Type      string
	IsMembers bool
	IsOrgs    bool
	HasQuery  bool

	Members       []directory.MemberHit
	Organizations []models.Organization
	Default       *directory.PartitionView
}

// ServeDiscover handles GET /discover?query=&type=.
//
// The query parameter is passed through untrimmed: interior and edge
// whitespace are significant to the substring match.
func (h *Handler) ServeDiscover(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")
	typ := query.Get(r, "type")
	mode := directory.ParseMode(typ)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Directory.Query(ctx, q, mode)
	if err != nil {
		// A failed lookup is an explicit error state, never an empty page.
		h.Log.Warn("discover query failed", zap.String("query", q), zap.Error(err))
		uierrors.RenderUnavailable(w, r, "/discover")
		return
	}

	data := pageData{
		BaseVM:        viewdata.NewBaseVM(r, "Discover", "/"),
		Query:         q,
		Type:          string(mode),
		IsMembers:     mode == directory.ModeMembers,
		IsOrgs:        mode == directory.ModeOrganizations,
		HasQuery:      q != "",
		Members:       res.Members,
		Organizations: res.Organizations,
		Default:       res.Default,
	}

	templates.Render(w, r, "discover", data)
}
