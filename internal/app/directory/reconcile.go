// internal/app/directory/reconcile.go
package directory

import (
	"context"

	"github.com/dalemusser/connecthub/internal/domain/models"
)

// SearchResult is the single discriminated shape handed to the
// presentation layer. Exactly one of Members, Organizations, or Default is
// populated; the unused variants are structurally absent (nil), so a
// consumer can never mistake "zero organizations because the mode
// excluded them" for "zero organizations because none matched".
//
// A populated search variant may be an empty (non-nil) slice: that is the
// legitimate "no matches" outcome, distinct from an error.
type SearchResult struct {
	Members       []MemberHit           `json:"members,omitempty"`
	Organizations []models.Organization `json:"organizations,omitempty"`
	Default       *PartitionView        `json:"default,omitempty"`
}

// ExactlyOne reports whether the result honors the reconciler invariant.
// It exists for callers (and tests) that assemble or forward results.
func (r SearchResult) ExactlyOne() bool {
	n := 0
	if r.Members != nil {
		n++
	}
	if r.Organizations != nil {
		n++
	}
	if r.Default != nil {
		n++
	}
	return n == 1
}

// Query reconciles a directory request into a SearchResult.
//
// A non-empty query runs the search engine in the requested mode; an empty
// query produces the default partitioned view. Search failures propagate
// (wrapped in ErrQueryFailed) so the caller renders an explicit error
// state; an empty default view is never substituted for a failed search.
func (s *Service) Query(ctx context.Context, query string, mode Mode) (SearchResult, error) {
	if query == "" {
		view, err := s.Partition(ctx)
		if err != nil {
			return SearchResult{}, err
		}
		return SearchResult{Default: view}, nil
	}

	switch mode {
	case ModeOrganizations:
		orgs, err := s.SearchOrganizations(ctx, query)
		if err != nil {
			return SearchResult{}, err
		}
		return SearchResult{Organizations: orgs}, nil
	default:
		hits, err := s.SearchMembers(ctx, query)
		if err != nil {
			return SearchResult{}, err
		}
		return SearchResult{Members: hits}, nil
	}
}
