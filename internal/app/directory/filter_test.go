package directory

import (
	"reflect"
	"testing"

	"github.com/dalemusser/connecthub/internal/domain/models"
)

func filterFixture() (tech, finance models.Category, orgs []OrganizationWithCategory) {
	tech = newCategory("Tech")
	finance = newCategory("Finance")

	acme := newOrg("Acme", "acme", tech.ID)
	bexo := newOrg("Bexo", "bexo", finance.ID)
	zenit := newOrg("Zenit", "zenit", tech.ID)

	orgs = []OrganizationWithCategory{
		{Organization: zenit, Category: tech},
		{Organization: acme, Category: tech},
		{Organization: bexo, Category: finance},
	}
	return tech, finance, orgs
}

func names(orgs []OrganizationWithCategory) []string {
	out := make([]string, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, o.Name)
	}
	return out
}

func TestFilterApply_UnsetSortKeepsStoreOrder(t *testing.T) {
	_, _, orgs := filterFixture()

	var f Filter
	got := names(f.Apply(orgs))
	want := []string{"Zenit", "Acme", "Bexo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply() = %v, want store order %v", got, want)
	}
}

func TestFilterApply_Sort(t *testing.T) {
	_, _, orgs := filterFixture()

	tests := []struct {
		sort SortOrder
		want []string
	}{
		{SortAsc, []string{"Acme", "Bexo", "Zenit"}},
		{SortDesc, []string{"Zenit", "Bexo", "Acme"}},
	}
	for _, tt := range tests {
		f := Filter{Sort: tt.sort}
		if got := names(f.Apply(orgs)); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("sort %q: Apply() = %v, want %v", tt.sort, got, tt.want)
		}
	}
}

func TestFilterApply_TextFilter(t *testing.T) {
	_, _, orgs := filterFixture()

	f := Filter{Query: "EX"}
	if got := names(f.Apply(orgs)); !reflect.DeepEqual(got, []string{"Bexo"}) {
		t.Errorf("Apply() = %v, want [Bexo]", got)
	}

	// Empty query matches everything.
	f = Filter{Query: ""}
	if got := f.Apply(orgs); len(got) != len(orgs) {
		t.Errorf("empty query kept %d of %d organizations", len(got), len(orgs))
	}
}

func TestFilterApply_FacetORSemantics(t *testing.T) {
	tech, finance, orgs := filterFixture()

	f := Filter{Sort: SortAsc}
	f.Toggle(tech.ID.Hex())
	if got := names(f.Apply(orgs)); !reflect.DeepEqual(got, []string{"Acme", "Zenit"}) {
		t.Errorf("facet {Tech}: Apply() = %v, want [Acme Zenit]", got)
	}

	// Adding Finance widens the result to the union, not the intersection.
	f.Toggle(finance.ID.Hex())
	if got := names(f.Apply(orgs)); !reflect.DeepEqual(got, []string{"Acme", "Bexo", "Zenit"}) {
		t.Errorf("facet {Tech,Finance}: Apply() = %v, want union", got)
	}

	// Empty facet set means no facet constraint.
	f.Toggle(tech.ID.Hex())
	f.Toggle(finance.ID.Hex())
	if got := f.Apply(orgs); len(got) != len(orgs) {
		t.Errorf("empty facet set kept %d of %d organizations", len(got), len(orgs))
	}
}

func TestFilterToggle_Idempotence(t *testing.T) {
	tech, _, _ := filterFixture()

	var f Filter
	before := f.Selected()

	f.Toggle(tech.ID.Hex())
	if !f.IsSelected(tech.ID.Hex()) {
		t.Fatal("Toggle() did not select the category")
	}
	f.Toggle(tech.ID.Hex())
	if !reflect.DeepEqual(f.Selected(), before) {
		t.Errorf("double toggle left selection %v, want %v", f.Selected(), before)
	}
}

func TestFilterReset_ClearsTextAndFacetsAtomically(t *testing.T) {
	tech, finance, _ := filterFixture()

	f := Filter{Sort: SortDesc, Query: "acme"}
	f.Toggle(tech.ID.Hex())
	f.Toggle(finance.ID.Hex())
	if !f.Active() {
		t.Fatal("filter should be active before reset")
	}

	f.Reset()
	if f.Query != "" {
		t.Errorf("Query = %q after reset, want \"\"", f.Query)
	}
	if len(f.Selected()) != 0 {
		t.Errorf("Selected() = %v after reset, want empty", f.Selected())
	}
	if f.Active() {
		t.Error("filter still active after reset")
	}
	// Sort survives a reset.
	if f.Sort != SortDesc {
		t.Errorf("Sort = %q after reset, want %q", f.Sort, SortDesc)
	}
}

func TestFilterApply_DoesNotMutateInput(t *testing.T) {
	_, _, orgs := filterFixture()
	before := names(orgs)

	f := Filter{Sort: SortAsc, Query: "e"}
	f.Apply(orgs)

	if got := names(orgs); !reflect.DeepEqual(got, before) {
		t.Errorf("input mutated: %v, want %v", got, before)
	}
}

func TestFilterApply_PureRecomputation(t *testing.T) {
	tech, _, orgs := filterFixture()

	f := Filter{Sort: SortAsc}
	f.Toggle(tech.ID.Hex())
	first := names(f.Apply(orgs))
	for i := 0; i < 3; i++ {
		if got := names(f.Apply(orgs)); !reflect.DeepEqual(got, first) {
			t.Fatalf("recomputation %d differs: %v vs %v", i, got, first)
		}
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in   string
		want SortOrder
	}{
		{"asc", SortAsc},
		{"desc", SortDesc},
		{"", SortNone},
		{"sideways", SortNone},
	}
	for _, tt := range tests {
		if got := ParseSortOrder(tt.in); got != tt.want {
			t.Errorf("ParseSortOrder(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
