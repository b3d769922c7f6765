package directory

import (
	"context"
	"errors"
	"testing"
)

func TestQuery_DefaultViewWhenNoQuery(t *testing.T) {
	store, _ := searchFixture()
	svc := NewService(store, nil)

	res, err := svc.Query(context.Background(), "", ModeMembers)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if !res.ExactlyOne() {
		t.Fatalf("result populates %v, want exactly the default variant", res)
	}
	if res.Default == nil {
		t.Fatal("Default = nil, want partition view")
	}
	if res.Default.Counts.Total != 3 {
		t.Errorf("Counts.Total = %d, want 3", res.Default.Counts.Total)
	}
}

func TestQuery_MemberModePopulatesOnlyMembers(t *testing.T) {
	store, _ := searchFixture()
	svc := NewService(store, nil)

	res, err := svc.Query(context.Background(), "lee", ModeMembers)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if !res.ExactlyOne() {
		t.Fatalf("result populates more than one variant: %+v", res)
	}
	if res.Members == nil {
		t.Fatal("Members = nil, want populated variant")
	}
	// The unused variants must be structurally absent, not merely empty.
	if res.Organizations != nil {
		t.Errorf("Organizations = %v, want nil", res.Organizations)
	}
	if res.Default != nil {
		t.Errorf("Default = %+v, want nil", res.Default)
	}
}

func TestQuery_OrganizationMode(t *testing.T) {
	store, _ := searchFixture()
	svc := NewService(store, nil)

	res, err := svc.Query(context.Background(), "acme", ModeOrganizations)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if !res.ExactlyOne() {
		t.Fatalf("result populates more than one variant: %+v", res)
	}
	if len(res.Organizations) != 1 || res.Organizations[0].Slug != "acme" {
		t.Errorf("Organizations = %+v, want [acme]", res.Organizations)
	}
}

func TestQuery_ZeroMatchesIsPopulatedEmptyVariant(t *testing.T) {
	store, _ := searchFixture()
	svc := NewService(store, nil)

	res, err := svc.Query(context.Background(), "nobody", ModeMembers)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if res.Members == nil || len(res.Members) != 0 {
		t.Errorf("Members = %v, want empty non-nil slice", res.Members)
	}
	if !res.ExactlyOne() {
		t.Errorf("zero-match result does not keep the exclusivity invariant: %+v", res)
	}
}

func TestQuery_SearchFailureIsNotAnEmptyDefaultView(t *testing.T) {
	svc := NewService(&memStore{err: errStoreDown}, nil)

	res, err := svc.Query(context.Background(), "lee", ModeMembers)
	if !errors.Is(err, ErrQueryFailed) {
		t.Errorf("error = %v, want ErrQueryFailed", err)
	}
	if res.Default != nil || res.Members != nil || res.Organizations != nil {
		t.Errorf("failed query produced a result: %+v", res)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"people", ModeMembers},
		{"members", ModeMembers},
		{"companies", ModeOrganizations},
		{"organizations", ModeOrganizations},
		{"", ModeMembers},
		{"bogus", ModeMembers},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.in); got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
