package home_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/connecthub/internal/app/directory"
	"github.com/dalemusser/connecthub/internal/app/features/home"
	"github.com/dalemusser/connecthub/internal/testutil"
	"github.com/dalemusser/connecthub/internal/domain/models"
	"go.uber.org/zap"
)

type emptyStore struct{}

func (emptyStore) ListMembers(context.Context, directory.Affiliation) ([]models.User, error) {
	return nil, nil
}
func (emptyStore) CountMembers(context.Context, directory.Affiliation) (int, error) {
	return 0, nil
}
func (emptyStore) FindMembersByName(context.Context, string) ([]directory.MemberHit, error) {
	return nil, nil
}
func (emptyStore) FindOrganizationsByName(context.Context, string) ([]models.Organization, error) {
	return nil, nil
}
func (emptyStore) ListOrganizations(context.Context) ([]directory.OrganizationWithCategory, error) {
	return nil, nil
}
func (emptyStore) ListCategories(context.Context) ([]models.Category, error) {
	return nil, nil
}

func newTestHandler(t *testing.T) *home.Handler {
	t.Helper()
	testutil.BootTemplates(t)
	logger := zap.NewNop()
	return home.NewHandler(directory.NewService(emptyStore{}, logger), logger)
}

func TestServeRoot_Unauthenticated(t *testing.T) {
	handler := newTestHandler(t)

	req := testutil.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeRoot(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestServeRoot_AuthenticatedUser(t *testing.T) {
	handler := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("GET", "/", nil, testutil.MemberUser())
	rec := httptest.NewRecorder()

	handler.ServeRoot(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
