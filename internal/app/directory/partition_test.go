package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/dalemusser/connecthub/internal/domain/models"
)

func TestPartition_SplitIsDisjointAndComplete(t *testing.T) {
	cat := newCategory("Tech")
	orgA := newOrg("Acme", "acme", cat.ID)

	store := &memStore{
		members: []models.User{
			newMember("Ann", "Lee", &orgA.ID),
			newMember("Ben", "Lee", nil),
			newMember("Cara", "Zed", nil),
		},
		orgs:       []models.Organization{orgA},
		categories: []models.Category{cat},
	}
	svc := NewService(store, nil)

	view, err := svc.Partition(context.Background())
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	if got, want := view.Counts.Total, 3; got != want {
		t.Errorf("Counts.Total = %d, want %d", got, want)
	}
	if got, want := view.Counts.Affiliated, 1; got != want {
		t.Errorf("Counts.Affiliated = %d, want %d", got, want)
	}
	if got, want := view.Counts.Unaffiliated, 2; got != want {
		t.Errorf("Counts.Unaffiliated = %d, want %d", got, want)
	}

	if view.Counts.Affiliated+view.Counts.Unaffiliated != view.Counts.Total {
		t.Errorf("affiliated (%d) + unaffiliated (%d) != total (%d)",
			view.Counts.Affiliated, view.Counts.Unaffiliated, view.Counts.Total)
	}

	// Disjoint by identifier.
	seen := map[string]bool{}
	for _, u := range view.Affiliated {
		seen[u.ID.Hex()] = true
	}
	for _, u := range view.Unaffiliated {
		if seen[u.ID.Hex()] {
			t.Errorf("member %s appears in both partitions", u.FullName())
		}
	}
}

func TestPartition_OrderedByFamilyThenGivenName(t *testing.T) {
	store := &memStore{
		members: []models.User{
			newMember("Cara", "Zed", nil),
			newMember("Ben", "Lee", nil),
			newMember("Ann", "Lee", nil),
		},
	}
	svc := NewService(store, nil)

	view, err := svc.Partition(context.Background())
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	want := []string{"Ann Lee", "Ben Lee", "Cara Zed"}
	if len(view.All) != len(want) {
		t.Fatalf("len(All) = %d, want %d", len(view.All), len(want))
	}
	for i, name := range want {
		if got := view.All[i].FullName(); got != name {
			t.Errorf("All[%d] = %q, want %q", i, got, name)
		}
	}
}

func TestPartition_StoreFailureIsFatal(t *testing.T) {
	store := &memStore{err: errStoreDown}
	svc := NewService(store, nil)

	view, err := svc.Partition(context.Background())
	if err == nil {
		t.Fatal("Partition() succeeded against a failing store")
	}
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("error = %v, want ErrStoreUnavailable", err)
	}
	if view != nil {
		t.Errorf("got partial view %+v, want nil", view)
	}
}
