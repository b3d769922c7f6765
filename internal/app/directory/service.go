// internal/app/directory/service.go

// Package directory implements the directory query & filter engine: the
// affiliated/unaffiliated partition of the member set, name search across
// members and organizations, the in-memory facet filter over the
// organization listing, and the reconciler that merges those outcomes into
// a single discriminated SearchResult.
//
// The engine owns no durable state. Every operation works on a
// request-scoped snapshot fetched through the injected Store, so
// concurrent requests never share mutable data.
package directory

import (
	"context"
	"fmt"

	"github.com/dalemusser/connecthub/internal/domain/models"
	"go.uber.org/zap"
)

// Service is the directory engine bound to a record store.
type Service struct {
	store Store
	log   *zap.Logger
}

// NewService constructs a directory Service. A nil logger is replaced
// with a no-op logger.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, log: logger}
}

// Organizations loads the full organization snapshot, each paired with its
// category, as input for the facet filter.
func (s *Service) Organizations(ctx context.Context) ([]OrganizationWithCategory, error) {
	orgs, err := s.store.ListOrganizations(ctx)
	if err != nil {
		s.log.Warn("organization listing failed", zap.Error(err))
		return nil, fmt.Errorf("%w: list organizations: %w", ErrStoreUnavailable, err)
	}
	return orgs, nil
}

// Categories loads the facet categories in name order.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	cats, err := s.store.ListCategories(ctx)
	if err != nil {
		s.log.Warn("category listing failed", zap.Error(err))
		return nil, fmt.Errorf("%w: list categories: %w", ErrStoreUnavailable, err)
	}
	return cats, nil
}
