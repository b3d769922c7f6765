// internal/app/directory/store.go
package directory

import (
	"context"

	"github.com/dalemusser/connecthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Affiliation selects a slice of the member set by organization linkage.
type Affiliation int

const (
	// AffiliationAny matches every member.
	AffiliationAny Affiliation = iota
	// Affiliated matches members with a non-nil organization reference.
	Affiliated
	// Unaffiliated matches members with no organization reference.
	Unaffiliated
)

// OrgSummary is the partial {slug, name} projection attached to member
// search hits. It is deliberately a distinct type from models.Organization
// so a summary can never be passed where a full record is expected.
type OrgSummary struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// MemberHit is a member search result: the member record plus the summary
// of its affiliated organization, or nil when the member is unaffiliated.
type MemberHit struct {
	models.User
	Organization *OrgSummary `json:"organization"`
}

// OrganizationWithCategory pairs an organization with its resolved
// category, as required by the facet filter engine.
type OrganizationWithCategory struct {
	models.Organization
	Category models.Category `json:"category"`
}

// Store is the record-store capability the directory engine is built on.
// It is satisfied by the Mongo adapters under internal/app/store and by an
// in-memory fake in tests.
//
// Read methods return records in canonical order (members: family name,
// given name, id ascending; organizations: name ascending) and resolve the
// affiliation/category references their result types carry. The engine
// re-establishes member ordering itself, so adapters that cannot sort are
// still correct, just slower.
type Store interface {
	ListMembers(ctx context.Context, aff Affiliation) ([]models.User, error)
	CountMembers(ctx context.Context, aff Affiliation) (int, error)
	FindMembersByName(ctx context.Context, query string) ([]MemberHit, error)
	FindOrganizationsByName(ctx context.Context, query string) ([]models.Organization, error)
	ListOrganizations(ctx context.Context) ([]OrganizationWithCategory, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// memberLess is the canonical member ordering: family name ascending,
// ties broken by given name, then by id for full determinism. Comparison
// uses the stored folded fields so ordering is case/diacritic-insensitive.
func memberLess(a, b models.User) bool {
	if a.LastNameCI != b.LastNameCI {
		return a.LastNameCI < b.LastNameCI
	}
	if a.FirstNameCI != b.FirstNameCI {
		return a.FirstNameCI < b.FirstNameCI
	}
	return idLess(a.ID, b.ID)
}

func idLess(a, b primitive.ObjectID) bool {
	return a.Hex() < b.Hex()
}
