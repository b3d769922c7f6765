// internal/app/directory/filter.go
package directory

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder controls the name ordering of a filtered organization listing.
type SortOrder string

const (
	// SortNone leaves the listing in store order.
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder maps a request parameter onto a SortOrder; unknown values
// mean "no sort requested".
func ParseSortOrder(s string) SortOrder {
	switch s {
	case "asc":
		return SortAsc
	case "desc":
		return SortDesc
	default:
		return SortNone
	}
}

// nameCollator performs locale-aware, loose (case/diacritic-insensitive)
// name comparison. Und keeps ordering locale-neutral while still handling
// accented names sensibly. Collators are not safe for concurrent use, so
// Apply creates one per call rather than sharing this across requests.
func nameCollator() *collate.Collator {
	return collate.New(language.Und, collate.Loose)
}

// Filter holds the three independent inputs of the facet filter engine:
// a sort order, a free-text name filter, and a set of selected category
// facets. The zero value is a filter that passes everything in store
// order.
//
// Filtering is a pure function of (organizations, sort, query, selected):
// Apply never mutates its input and carries no state between calls, so any
// sequence of Toggle/SetQuery/Reset mutations yields an independent,
// complete recomputation.
type Filter struct {
	Sort  SortOrder
	Query string

	// selected preserves selection order for display; membership is what
	// matters for filtering.
	selected []string
}

// Toggle flips a category's membership in the facet set: selecting an
// already-selected category removes it, selecting a new one appends it.
// Toggling twice is the identity.
func (f *Filter) Toggle(categoryID string) {
	for i, id := range f.selected {
		if id == categoryID {
			f.selected = append(f.selected[:i], f.selected[i+1:]...)
			return
		}
	}
	f.selected = append(f.selected, categoryID)
}

// IsSelected reports whether a category is part of the facet set.
func (f *Filter) IsSelected(categoryID string) bool {
	for _, id := range f.selected {
		if id == categoryID {
			return true
		}
	}
	return false
}

// Selected returns the selected category ids in selection order. The
// returned slice is a copy; mutating it does not affect the filter.
func (f *Filter) Selected() []string {
	out := make([]string, len(f.selected))
	copy(out, f.selected)
	return out
}

// Active reports whether any text filter or facet is in effect, i.e.
// whether a reset would change anything.
func (f *Filter) Active() bool {
	return f.Query != "" || len(f.selected) > 0
}

// Reset clears the text filter and the facet set in one step, never one
// without the other. The sort order is not part of the reset.
func (f *Filter) Reset() {
	f.Query = ""
	f.selected = nil
}

// Clone returns an independent copy. A plain struct copy would share the
// facet slice's backing array, so a Toggle on the copy could corrupt the
// original's selection.
func (f Filter) Clone() Filter {
	c := f
	c.selected = append([]string(nil), f.selected...)
	return c
}

// Apply produces the filtered, sorted listing from an already-loaded
// organization snapshot. The three predicates compose conjunctively and
// are applied sort first, then text filter, then facet; since each is a pure
// filter/ordering over the same stable collection, the order cannot change
// the resulting set, only this implementation's shape.
//
// Facet semantics are OR across the selected categories: an organization
// passes if the set is empty or its (single) category is in the set.
// Selecting two categories therefore widens the result to the union.
func (f *Filter) Apply(orgs []OrganizationWithCategory) []OrganizationWithCategory {
	out := make([]OrganizationWithCategory, len(orgs))
	copy(out, orgs)

	if f.Sort != SortNone {
		c := nameCollator()
		sort.SliceStable(out, func(i, j int) bool {
			cmp := c.CompareString(out[i].Name, out[j].Name)
			if f.Sort == SortDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	if f.Query != "" {
		q := strings.ToLower(f.Query)
		filtered := out[:0]
		for _, org := range out {
			if strings.Contains(strings.ToLower(org.Name), q) {
				filtered = append(filtered, org)
			}
		}
		out = filtered
	}

	if len(f.selected) > 0 {
		filtered := out[:0]
		for _, org := range out {
			if f.IsSelected(org.CategoryID.Hex()) {
				filtered = append(filtered, org)
			}
		}
		out = filtered
	}

	return out
}
