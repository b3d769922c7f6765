// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	categorystore "github.com/dalemusser/connecthub/internal/app/store/categories"
	organizationstore "github.com/dalemusser/connecthub/internal/app/store/organizations"
	userstore "github.com/dalemusser/connecthub/internal/app/store/users"
	"github.com/dalemusser/connecthub/internal/app/system/authz"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/dalemusser/connecthub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Handler struct {
	Users         *userstore.Store
	Organizations *organizationstore.Store
	Categories    *categorystore.Store
	ErrLog        *uierrors.ErrorLogger
	Log           *zap.Logger
}

func NewHandler(users *userstore.Store, orgs *organizationstore.Store, cats *categorystore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:         users,
		Organizations: orgs,
		Categories:    cats,
		ErrLog:        errLog,
		Log:           logger,
	}
}

type pageData struct {
	viewdata.BaseVM

	MemberCount       int64
	AffiliatedCount   int64
	UnaffiliatedCount int64
	OrgCount          int64
	CategoryCount     int
}

// ServeDashboard handles GET /dashboard. Members land on their profile;
// admins get the management overview.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	if _, _, _, ok := authz.UserCtx(r); !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if !authz.IsAdmin(r) {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	h.serveAdmin(w, r)
}

func (h *Handler) serveAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "Dashboard", "/"),
	}

	yes, no := true, false
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.MemberCount, err = h.Users.Count(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		data.AffiliatedCount, err = h.Users.Count(gctx, &yes)
		return err
	})
	g.Go(func() (err error) {
		data.UnaffiliatedCount, err = h.Users.Count(gctx, &no)
		return err
	})
	g.Go(func() (err error) {
		data.OrgCount, err = h.Organizations.Count(gctx, bson.M{})
		return err
	})
	g.Go(func() error {
		cats, err := h.Categories.List(gctx)
		if err != nil {
			return err
		}
		data.CategoryCount = len(cats)
		return nil
	})
	if err := g.Wait(); err != nil {
		h.ErrLog.ServerError(w, r, "load dashboard counts", err)
		return
	}

	templates.Render(w, r, "dashboard", data)
}
