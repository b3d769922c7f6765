package directory

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/connecthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory Store used to exercise the engine without a
// database. Matching mirrors the Mongo adapters: case-insensitive
// substring on name fields, no trimming.
type memStore struct {
	members    []models.User
	orgs       []models.Organization
	categories []models.Category

	// err, when set, is returned by every method to simulate an
	// unreachable record store.
	err error
}

var errStoreDown = errors.New("connection refused")

func (m *memStore) ListMembers(_ context.Context, aff Affiliation) ([]models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.User
	for _, u := range m.members {
		switch aff {
		case Affiliated:
			if u.OrganizationID == nil {
				continue
			}
		case Unaffiliated:
			if u.OrganizationID != nil {
				continue
			}
		}
		out = append(out, u)
	}
	return out, nil
}

func (m *memStore) CountMembers(ctx context.Context, aff Affiliation) (int, error) {
	members, err := m.ListMembers(ctx, aff)
	if err != nil {
		return 0, err
	}
	return len(members), nil
}

func (m *memStore) FindMembersByName(_ context.Context, query string) ([]MemberHit, error) {
	if m.err != nil {
		return nil, m.err
	}
	q := strings.ToLower(query)
	var out []MemberHit
	for _, u := range m.members {
		if !strings.Contains(strings.ToLower(u.FirstName), q) &&
			!strings.Contains(strings.ToLower(u.LastName), q) {
			continue
		}
		hit := MemberHit{User: u}
		if u.OrganizationID != nil {
			if org, ok := m.orgByID(*u.OrganizationID); ok {
				hit.Organization = &OrgSummary{Slug: org.Slug, Name: org.Name}
			}
		}
		out = append(out, hit)
	}
	return out, nil
}

func (m *memStore) FindOrganizationsByName(_ context.Context, query string) ([]models.Organization, error) {
	if m.err != nil {
		return nil, m.err
	}
	q := strings.ToLower(query)
	var out []models.Organization
	for _, org := range m.orgs {
		if strings.Contains(strings.ToLower(org.Name), q) {
			out = append(out, org)
		}
	}
	return out, nil
}

func (m *memStore) ListOrganizations(_ context.Context) ([]OrganizationWithCategory, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []OrganizationWithCategory
	for _, org := range m.orgs {
		owc := OrganizationWithCategory{Organization: org}
		for _, cat := range m.categories {
			if cat.ID == org.CategoryID {
				owc.Category = cat
				break
			}
		}
		out = append(out, owc)
	}
	return out, nil
}

func (m *memStore) ListCategories(_ context.Context) ([]models.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *memStore) orgByID(id primitive.ObjectID) (models.Organization, bool) {
	for _, org := range m.orgs {
		if org.ID == id {
			return org, true
		}
	}
	return models.Organization{}, false
}

/* ---------- fixture helpers ---------- */

func newMember(first, last string, orgID *primitive.ObjectID) models.User {
	return models.User{
		ID:             primitive.NewObjectID(),
		FirstName:      first,
		FirstNameCI:    strings.ToLower(first),
		LastName:       last,
		LastNameCI:     strings.ToLower(last),
		Email:          strings.ToLower(first + "." + last + "@example.com"),
		Role:           "member",
		Status:         "active",
		OrganizationID: orgID,
	}
}

func newOrg(name, slug string, catID primitive.ObjectID) models.Organization {
	return models.Organization{
		ID:         primitive.NewObjectID(),
		Slug:       slug,
		Name:       name,
		NameCI:     strings.ToLower(name),
		CategoryID: catID,
	}
}

func newCategory(name string) models.Category {
	return models.Category{
		ID:   primitive.NewObjectID(),
		Name: name,
	}
}
