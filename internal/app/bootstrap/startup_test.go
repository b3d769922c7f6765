package bootstrap

import (
	"testing"

	"github.com/dalemusser/connecthub/internal/domain/models"
	"github.com/dalemusser/connecthub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestEnsureAdmin_CreatesNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := ensureAdmin(ctx, db, "admin@example.com", zap.NewNop())
	if err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}

	var user models.User
	err = db.Collection("users").FindOne(ctx, bson.M{"email": "admin@example.com"}).Decode(&user)
	if err != nil {
		t.Fatalf("failed to find created user: %v", err)
	}

	if user.Role != "admin" {
		t.Errorf("expected role %q, got %q", "admin", user.Role)
	}
	if user.Status != "active" {
		t.Errorf("expected status %q, got %q", "active", user.Status)
	}
	if user.PasswordHash != "" {
		t.Error("a bootstrapped admin must not carry a password hash")
	}
}

func TestEnsureAdmin_PromotesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	member := fixtures.CreateMember(ctx, "Ada", "Lovelace", "ada@example.com", nil)

	err := ensureAdmin(ctx, db, "ada@example.com", zap.NewNop())
	if err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}

	var user models.User
	err = db.Collection("users").FindOne(ctx, bson.M{"_id": member.ID}).Decode(&user)
	if err != nil {
		t.Fatalf("failed to find user: %v", err)
	}

	if user.Role != "admin" {
		t.Errorf("expected role %q, got %q", "admin", user.Role)
	}
	if user.FirstName != "Ada" {
		t.Errorf("promotion must not rewrite the profile, got first name %q", user.FirstName)
	}
}

func TestEnsureAdmin_AlreadyAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	admin := fixtures.CreateAdmin(ctx, "Grace", "Hopper", "grace@example.com")

	err := ensureAdmin(ctx, db, "grace@example.com", zap.NewNop())
	if err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}

	count, err := db.Collection("users").CountDocuments(ctx, bson.M{"_id": admin.ID, "role": "admin"})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 1 {
		t.Error("expected the existing admin to be left alone")
	}
}
