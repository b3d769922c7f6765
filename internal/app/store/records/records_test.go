package records_test

import (
	"testing"

	"github.com/dalemusser/connecthub/internal/app/directory"
	"github.com/dalemusser/connecthub/internal/app/store/records"
	"github.com/dalemusser/connecthub/internal/testutil"
)

func TestFindMembersByName_AttachesOrgSummaries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	cat := fixtures.CreateCategory(ctx, "Consulting")
	org := fixtures.CreateOrganization(ctx, "Acme", "acme", cat.ID)
	fixtures.CreateMember(ctx, "Ada", "Lovelace", "ada@example.com", &org.ID)
	fixtures.CreateMember(ctx, "Adam", "Smith", "adam@example.com", nil)

	store := records.New(db)

	hits, err := store.FindMembersByName(ctx, "ada")
	if err != nil {
		t.Fatalf("FindMembersByName failed: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}

	byEmail := map[string]directory.MemberHit{}
	for _, hit := range hits {
		byEmail[hit.Email] = hit
	}

	withOrg := byEmail["ada@example.com"]
	if withOrg.Organization == nil {
		t.Fatal("affiliated hit must carry an organization summary")
	}
	if withOrg.Organization.Slug != "acme" || withOrg.Organization.Name != "Acme" {
		t.Errorf("summary: got %+v, want {acme Acme}", *withOrg.Organization)
	}

	if byEmail["adam@example.com"].Organization != nil {
		t.Error("unaffiliated hit must carry a nil organization summary")
	}
}

func TestListOrganizations_PairsCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	consulting := fixtures.CreateCategory(ctx, "Consulting")
	legal := fixtures.CreateCategory(ctx, "Legal")
	fixtures.CreateOrganization(ctx, "Acme", "acme", consulting.ID)
	fixtures.CreateOrganization(ctx, "Briggs Law", "briggs-law", legal.ID)

	store := records.New(db)

	orgs, err := store.ListOrganizations(ctx)
	if err != nil {
		t.Fatalf("ListOrganizations failed: %v", err)
	}
	if len(orgs) != 2 {
		t.Fatalf("got %d organizations, want 2", len(orgs))
	}

	for _, org := range orgs {
		if org.Category.ID != org.CategoryID {
			t.Errorf("%s: category %s does not match reference %s",
				org.Slug, org.Category.ID.Hex(), org.CategoryID.Hex())
		}
	}
}

func TestCountMembers_ByAffiliation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	cat := fixtures.CreateCategory(ctx, "Consulting")
	org := fixtures.CreateOrganization(ctx, "Acme", "acme", cat.ID)
	fixtures.CreateMember(ctx, "Ada", "Lovelace", "ada@example.com", &org.ID)
	fixtures.CreateMember(ctx, "Grace", "Hopper", "grace@example.com", nil)
	fixtures.CreateMember(ctx, "Alan", "Turing", "alan@example.com", nil)

	store := records.New(db)

	cases := []struct {
		aff  directory.Affiliation
		want int
	}{
		{directory.AffiliationAny, 3},
		{directory.Affiliated, 1},
		{directory.Unaffiliated, 2},
	}
	for _, tc := range cases {
		got, err := store.CountMembers(ctx, tc.aff)
		if err != nil {
			t.Fatalf("CountMembers(%v) failed: %v", tc.aff, err)
		}
		if got != tc.want {
			t.Errorf("CountMembers(%v): got %d, want %d", tc.aff, got, tc.want)
		}
	}
}
