// internal/app/features/organizations/list.go
package organizations

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dalemusser/connecthub/internal/app/directory"
	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	"github.com/dalemusser/connecthub/internal/app/system/authz"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/dalemusser/connecthub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// facetVM is one category checkbox in the filter sidebar. ToggleURL is the
// listing URL with this facet flipped and everything else preserved.
type facetVM struct {
	ID        string
	Name      string
	Selected  bool
	ToggleURL string
}

type listData struct {
	viewdata.BaseVM

	Organizations []directory.OrganizationWithCategory
	Facets        []facetVM

	Query        string
	Sort         string
	FilterActive bool

	SortAscURL  string
	SortDescURL string
	ResetURL    string

	CanEdit bool
}

// ServeList handles GET /organizations?sort=&query=&cat=.
//
// The cat parameter repeats for each selected category. Selection widens:
// an organization passes when its category matches any selected facet.
// The reset link clears the text filter and every facet at once, keeping
// only the sort order.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	orgs, err := h.Directory.Organizations(ctx)
	if err != nil {
		h.Log.Warn("organization listing unavailable", zap.Error(err))
		uierrors.RenderUnavailable(w, r, "/")
		return
	}
	cats, err := h.Directory.Categories(ctx)
	if err != nil {
		h.Log.Warn("categories unavailable", zap.Error(err))
		uierrors.RenderUnavailable(w, r, "/")
		return
	}

	filter := directory.Filter{
		Sort:  directory.ParseSortOrder(query.Get(r, "sort")),
		Query: r.URL.Query().Get("query"),
	}
	for _, id := range r.URL.Query()["cat"] {
		if id != "" && !filter.IsSelected(id) {
			filter.Toggle(id)
		}
	}

	facets := make([]facetVM, 0, len(cats))
	for _, c := range cats {
		id := c.ID.Hex()

		toggled := filter.Clone()
		toggled.Toggle(id)

		facets = append(facets, facetVM{
			ID:        id,
			Name:      c.Name,
			Selected:  filter.IsSelected(id),
			ToggleURL: listURL(string(filter.Sort), filter.Query, toggled.Selected()),
		})
	}

	templates.Render(w, r, "organizations_list", listData{
		BaseVM:        viewdata.NewBaseVM(r, "Organizations", "/"),
		Organizations: filter.Apply(orgs),
		Facets:        facets,
		Query:         filter.Query,
		Sort:          string(filter.Sort),
		FilterActive:  filter.Active(),
		SortAscURL:    listURL("asc", filter.Query, filter.Selected()),
		SortDescURL:   listURL("desc", filter.Query, filter.Selected()),
		ResetURL:      listURL(string(filter.Sort), "", nil),
		CanEdit:       authz.CanManageDirectory(r),
	})
}

// listURL builds a listing URL carrying the given sort, text filter, and
// facet selection.
func listURL(sort, textQuery string, selected []string) string {
	vals := url.Values{}
	if sort != "" {
		vals.Set("sort", sort)
	}
	if textQuery != "" {
		vals.Set("query", textQuery)
	}
	for _, id := range selected {
		vals.Add("cat", id)
	}
	if len(vals) == 0 {
		return "/organizations"
	}
	return "/organizations?" + vals.Encode()
}
