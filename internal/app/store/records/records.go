// Package records adapts the Mongo-backed stores to the directory engine's
// Store interface, doing the cross-collection joins (member → organization
// summary, organization → category) that the engine's views need.
package records

import (
	"context"

	"github.com/dalemusser/connecthub/internal/app/directory"
	categorystore "github.com/dalemusser/connecthub/internal/app/store/categories"
	organizationstore "github.com/dalemusser/connecthub/internal/app/store/organizations"
	userstore "github.com/dalemusser/connecthub/internal/app/store/users"
	"github.com/dalemusser/connecthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	Users         *userstore.Store
	Organizations *organizationstore.Store
	Categories    *categorystore.Store
}

var _ directory.Store = (*Store)(nil)

func New(db *mongo.Database) *Store {
	return &Store{
		Users:         userstore.New(db),
		Organizations: organizationstore.New(db),
		Categories:    categorystore.New(db),
	}
}

func affiliated(aff directory.Affiliation) *bool {
	switch aff {
	case directory.Affiliated:
		v := true
		return &v
	case directory.Unaffiliated:
		v := false
		return &v
	default:
		return nil
	}
}

func (s *Store) ListMembers(ctx context.Context, aff directory.Affiliation) ([]models.User, error) {
	return s.Users.List(ctx, affiliated(aff))
}

func (s *Store) CountMembers(ctx context.Context, aff directory.Affiliation) (int, error) {
	n, err := s.Users.Count(ctx, affiliated(aff))
	return int(n), err
}

// FindMembersByName searches users by name and annotates each affiliated
// hit with its organization's slug and display name. Organizations are
// fetched once per result set, not per member.
func (s *Store) FindMembersByName(ctx context.Context, query string) ([]directory.MemberHit, error) {
	users, err := s.Users.FindByName(ctx, query)
	if err != nil {
		return nil, err
	}

	var orgIDs []primitive.ObjectID
	seen := map[primitive.ObjectID]bool{}
	for _, u := range users {
		if u.OrganizationID != nil && !seen[*u.OrganizationID] {
			seen[*u.OrganizationID] = true
			orgIDs = append(orgIDs, *u.OrganizationID)
		}
	}

	summaries := map[primitive.ObjectID]directory.OrgSummary{}
	if len(orgIDs) > 0 {
		orgs, err := s.Organizations.GetByIDs(ctx, orgIDs)
		if err != nil {
			return nil, err
		}
		for _, org := range orgs {
			summaries[org.ID] = directory.OrgSummary{Slug: org.Slug, Name: org.Name}
		}
	}

	hits := make([]directory.MemberHit, 0, len(users))
	for _, u := range users {
		hit := directory.MemberHit{User: u}
		if u.OrganizationID != nil {
			if sum, ok := summaries[*u.OrganizationID]; ok {
				hit.Organization = &sum
			}
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

func (s *Store) FindOrganizationsByName(ctx context.Context, query string) ([]models.Organization, error) {
	return s.Organizations.FindByName(ctx, query)
}

// ListOrganizations returns every organization paired with its category.
// An organization whose category has been removed keeps a zero Category
// rather than being dropped from the listing.
func (s *Store) ListOrganizations(ctx context.Context) ([]directory.OrganizationWithCategory, error) {
	orgs, err := s.Organizations.List(ctx)
	if err != nil {
		return nil, err
	}
	cats, err := s.Categories.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Category, len(cats))
	for _, cat := range cats {
		byID[cat.ID] = cat
	}

	out := make([]directory.OrganizationWithCategory, 0, len(orgs))
	for _, org := range orgs {
		out = append(out, directory.OrganizationWithCategory{
			Organization: org,
			Category:     byID[org.CategoryID],
		})
	}
	return out, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Categories.List(ctx)
}
