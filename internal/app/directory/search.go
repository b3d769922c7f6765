// internal/app/directory/search.go
package directory

import (
	"context"
	"fmt"
	"sort"

	"github.com/dalemusser/connecthub/internal/domain/models"
	"go.uber.org/zap"
)

// Mode selects which entity kind a search targets.
type Mode string

const (
	ModeMembers       Mode = "members"
	ModeOrganizations Mode = "organizations"
)

// ParseMode maps the presentation layer's tab values onto a Mode. The
// directory UI calls the two tabs "people" and "companies"; the engine's
// own names are accepted as well. Anything else falls back to members,
// matching the page's default tab.
func ParseMode(s string) Mode {
	switch s {
	case "companies", string(ModeOrganizations):
		return ModeOrganizations
	default:
		return ModeMembers
	}
}

// SearchMembers returns members whose given or family name contains the
// query, case-insensitively. The query is NOT trimmed: a query of only
// whitespace is matched literally, which keeps exact-match semantics for
// names containing significant whitespace. Each hit carries the {slug,
// name} summary of its organization, or nil when unaffiliated.
//
// An empty result is valid and distinct from an error; a store failure is
// wrapped in ErrQueryFailed, never converted to "no results".
func (s *Service) SearchMembers(ctx context.Context, query string) ([]MemberHit, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	hits, err := s.store.FindMembersByName(ctx, query)
	if err != nil {
		s.log.Warn("member search failed", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("%w: find members: %w", ErrQueryFailed, err)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return memberLess(hits[i].User, hits[j].User)
	})
	if hits == nil {
		hits = []MemberHit{}
	}
	return hits, nil
}

// SearchOrganizations returns organizations whose name contains the query,
// case-insensitively, ordered by name. The query is passed through
// untrimmed for the same reason as SearchMembers.
func (s *Service) SearchOrganizations(ctx context.Context, query string) ([]models.Organization, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	orgs, err := s.store.FindOrganizationsByName(ctx, query)
	if err != nil {
		s.log.Warn("organization search failed", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("%w: find organizations: %w", ErrQueryFailed, err)
	}
	sort.SliceStable(orgs, func(i, j int) bool {
		if orgs[i].NameCI != orgs[j].NameCI {
			return orgs[i].NameCI < orgs[j].NameCI
		}
		return idLess(orgs[i].ID, orgs[j].ID)
	})
	if orgs == nil {
		orgs = []models.Organization{}
	}
	return orgs, nil
}
