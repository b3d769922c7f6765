// internal/app/directory/partition.go
package directory

import (
	"context"
	"fmt"
	"sort"

	"github.com/dalemusser/connecthub/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PartitionCounts carries the cardinalities of the three member views.
type PartitionCounts struct {
	Total        int `json:"total"`
	Affiliated   int `json:"affiliated"`
	Unaffiliated int `json:"unaffiliated"`
}

// PartitionView is the default (no-query) directory view: the full member
// set split by organization affiliation. Affiliated and Unaffiliated are
// disjoint and together cover All; their sizes sum to len(All). All three
// slices are ordered by family name, given name, then id.
type PartitionView struct {
	All          []models.User   `json:"all"`
	Affiliated   []models.User   `json:"affiliated"`
	Unaffiliated []models.User   `json:"unaffiliated"`
	Counts       PartitionCounts `json:"counts"`
}

// Partition computes the three default member views and their counts.
//
// The three store reads are independent and issued concurrently; all must
// succeed before a view is assembled. Any failure fails the whole
// operation (wrapped in ErrStoreUnavailable), since a partial split would
// let the affiliated/unaffiliated invariant silently break.
func (s *Service) Partition(ctx context.Context) (*PartitionView, error) {
	var all, affiliated, unaffiliated []models.User

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = s.store.ListMembers(gctx, AffiliationAny)
		if err != nil {
			return fmt.Errorf("list all members: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		affiliated, err = s.store.ListMembers(gctx, Affiliated)
		if err != nil {
			return fmt.Errorf("list affiliated members: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		unaffiliated, err = s.store.ListMembers(gctx, Unaffiliated)
		if err != nil {
			return fmt.Errorf("list unaffiliated members: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Warn("partition fetch failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	sortMembers(all)
	sortMembers(affiliated)
	sortMembers(unaffiliated)

	return &PartitionView{
		All:          all,
		Affiliated:   affiliated,
		Unaffiliated: unaffiliated,
		Counts: PartitionCounts{
			Total:        len(all),
			Affiliated:   len(affiliated),
			Unaffiliated: len(unaffiliated),
		},
	}, nil
}

// sortMembers establishes the canonical member ordering in place.
func sortMembers(members []models.User) {
	sort.SliceStable(members, func(i, j int) bool {
		return memberLess(members[i], members[j])
	})
}
