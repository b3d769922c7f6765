package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/dalemusser/connecthub/internal/app/store/users"
	"github.com/dalemusser/connecthub/internal/domain/models"
	"github.com/dalemusser/connecthub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreate_NormalizesAndFolds(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := userstore.New(db)

	created, err := store.Create(ctx, models.User{
		FirstName: "  José ",
		LastName:  " GARCÍA  ",
		Email:     "Jose.Garcia@Example.COM",
		Role:      "member",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.FirstName != "José" {
		t.Errorf("FirstName: got %q, want %q", created.FirstName, "José")
	}
	if created.FirstNameCI != "jose" {
		t.Errorf("FirstNameCI: got %q, want %q", created.FirstNameCI, "jose")
	}
	if created.LastNameCI != "garcia" {
		t.Errorf("LastNameCI: got %q, want %q", created.LastNameCI, "garcia")
	}
	if created.Email != "jose.garcia@example.com" {
		t.Errorf("Email: got %q, want %q", created.Email, "jose.garcia@example.com")
	}
	if created.Status != "active" {
		t.Errorf("Status: got %q, want %q", created.Status, "active")
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := userstore.New(db)

	u := models.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Role: "member"}
	if _, err := store.Create(ctx, u); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	u.Email = "ADA@example.com"
	_, err := store.Create(ctx, u)
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestGetByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	member := fixtures.CreateMember(ctx, "Ada", "Lovelace", "ada@example.com", nil)

	store := userstore.New(db)

	found, err := store.GetByEmail(ctx, "ADA@Example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if found.ID != member.ID {
		t.Errorf("got user %s, want %s", found.ID.Hex(), member.ID.Hex())
	}

	_, err = store.GetByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestList_AffiliationFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	cat := fixtures.CreateCategory(ctx, "Consulting")
	org := fixtures.CreateOrganization(ctx, "Acme", "acme", cat.ID)
	fixtures.CreateMember(ctx, "Ada", "Lovelace", "ada@example.com", &org.ID)
	fixtures.CreateMember(ctx, "Grace", "Hopper", "grace@example.com", nil)
	fixtures.CreateMember(ctx, "Alan", "Turing", "alan@example.com", nil)

	store := userstore.New(db)

	all, err := store.List(ctx, nil)
	if err != nil {
		t.Fatalf("List(nil) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("List(nil): got %d users, want 3", len(all))
	}

	yes, no := true, false
	affiliated, err := store.List(ctx, &yes)
	if err != nil {
		t.Fatalf("List(affiliated) failed: %v", err)
	}
	if len(affiliated) != 1 || affiliated[0].Email != "ada@example.com" {
		t.Errorf("List(affiliated): got %d users, want just ada", len(affiliated))
	}

	independent, err := store.List(ctx, &no)
	if err != nil {
		t.Fatalf("List(unaffiliated) failed: %v", err)
	}
	if len(independent) != 2 {
		t.Errorf("List(unaffiliated): got %d users, want 2", len(independent))
	}
	// Roster order: family name ascending.
	if independent[0].LastName != "Hopper" || independent[1].LastName != "Turing" {
		t.Errorf("roster order wrong: %s, %s", independent[0].LastName, independent[1].LastName)
	}
}

func TestFindByName_FoldedSubstringUntrimmed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	fixtures.CreateMember(ctx, "Ada", "Lovelace", "ada@example.com", nil)
	fixtures.CreateMember(ctx, "Adam", "Smith", "adam@example.com", nil)
	fixtures.CreateMember(ctx, "Grace", "Hopper", "grace@example.com", nil)

	store := userstore.New(db)

	hits, err := store.FindByName(ctx, "ADA")
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	if len(hits) != 2 {
		t.Errorf("FindByName(ADA): got %d hits, want 2", len(hits))
	}

	// Whitespace is part of the query, not noise around it.
	hits, err = store.FindByName(ctx, " ada")
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("FindByName(\" ada\"): got %d hits, want 0", len(hits))
	}
}

func TestClearOrganization_DetachesAllMembers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	cat := fixtures.CreateCategory(ctx, "Consulting")
	acme := fixtures.CreateOrganization(ctx, "Acme", "acme", cat.ID)
	other := fixtures.CreateOrganization(ctx, "Other", "other", cat.ID)
	fixtures.CreateMember(ctx, "Ada", "Lovelace", "ada@example.com", &acme.ID)
	fixtures.CreateMember(ctx, "Grace", "Hopper", "grace@example.com", &acme.ID)
	kept := fixtures.CreateMember(ctx, "Alan", "Turing", "alan@example.com", &other.ID)

	store := userstore.New(db)

	cleared, err := store.ClearOrganization(ctx, acme.ID)
	if err != nil {
		t.Fatalf("ClearOrganization failed: %v", err)
	}
	if cleared != 2 {
		t.Errorf("cleared %d members, want 2", cleared)
	}

	yes := true
	affiliated, err := store.List(ctx, &yes)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(affiliated) != 1 || affiliated[0].ID != kept.ID {
		t.Error("members of other organizations must keep their affiliation")
	}
}

func TestEmailExistsForOther(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	ada := fixtures.CreateMember(ctx, "Ada", "Lovelace", "ada@example.com", nil)
	grace := fixtures.CreateMember(ctx, "Grace", "Hopper", "grace@example.com", nil)

	store := userstore.New(db)

	// A member's own email is not a conflict.
	inUse, err := store.EmailExistsForOther(ctx, "ada@example.com", ada.ID)
	if err != nil {
		t.Fatalf("EmailExistsForOther failed: %v", err)
	}
	if inUse {
		t.Error("a member's own email must not count as in use")
	}

	// The lookup is case-insensitive like the rest of the email handling.
	inUse, err = store.EmailExistsForOther(ctx, "ADA@EXAMPLE.COM", grace.ID)
	if err != nil {
		t.Fatalf("EmailExistsForOther failed: %v", err)
	}
	if !inUse {
		t.Error("another member's email must count as in use regardless of case")
	}

	inUse, err = store.EmailExistsForOther(ctx, "nobody@example.com", grace.ID)
	if err != nil {
		t.Fatalf("EmailExistsForOther failed: %v", err)
	}
	if inUse {
		t.Error("an unused email must not count as in use")
	}
}
