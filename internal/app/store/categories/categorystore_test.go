package categorystore_test

import (
	"testing"

	categorystore "github.com/dalemusser/connecthub/internal/app/store/categories"
	"github.com/dalemusser/connecthub/internal/testutil"
)

func TestSeed_IsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := categorystore.New(db)

	if err := store.Seed(ctx, []string{"Legal", "Consulting"}); err != nil {
		t.Fatalf("first Seed failed: %v", err)
	}

	first, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	// Reseeding with an overlapping set only adds the new name.
	if err := store.Seed(ctx, []string{"Legal", "Technology"}); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}

	second, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(second) != 3 {
		t.Fatalf("got %d categories, want 3", len(second))
	}

	// Existing documents keep their ids.
	for _, before := range first {
		found := false
		for _, after := range second {
			if after.Name == before.Name && after.ID == before.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("category %q was rewritten by reseed", before.Name)
		}
	}

	// List is name-sorted.
	if second[0].Name != "Consulting" || second[1].Name != "Legal" || second[2].Name != "Technology" {
		t.Errorf("unexpected order: %s, %s, %s", second[0].Name, second[1].Name, second[2].Name)
	}
}
