package hierarchy

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jotomicron/mossy/internal/db"
	"github.com/jotomicron/mossy/internal/domain"
)

// mockStore answers hierarchy queries from canned rows.
type mockStore struct {
	ancestorsFn   func(ctx context.Context, concept int64, maxDistance int) ([]db.HierarchyRow, error)
	descendantsFn func(ctx context.Context, concept int64, maxDistance int) ([]db.HierarchyRow, error)
}

func (m *mockStore) Ancestors(ctx context.Context, concept int64, maxDistance int) ([]db.HierarchyRow, error) {
	return m.ancestorsFn(ctx, concept, maxDistance)
}

func (m *mockStore) Descendants(ctx context.Context, concept int64, maxDistance int) ([]db.HierarchyRow, error) {
	return m.descendantsFn(ctx, concept, maxDistance)
}

func TestRelatives_AncestorsOnly(t *testing.T) {
	descendantsCalled := false
	repo := New(&mockStore{
		ancestorsFn: func(_ context.Context, concept int64, maxDistance int) ([]db.HierarchyRow, error) {
			if concept != 1 || maxDistance != 2 {
				t.Errorf("unexpected query arguments: concept=%d maxDistance=%d", concept, maxDistance)
			}
			return []db.HierarchyRow{{Relative: 5, Distance: 1}, {Relative: 6, Distance: 2}}, nil
		},
		descendantsFn: func(context.Context, int64, int) ([]db.HierarchyRow, error) {
			descendantsCalled = true
			return nil, nil
		},
	})

	got, err := repo.Relatives(context.Background(), 1, 2, false)
	if err != nil {
		t.Fatalf("Relatives: %v", err)
	}

	want := []domain.HierarchyEdge{{Relative: 5, Distance: 1}, {Relative: 6, Distance: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Relatives: got %+v, want %+v", got, want)
	}
	if descendantsCalled {
		t.Error("descendants should not be queried when includeDescendants is false")
	}
}

func TestRelatives_WithDescendants(t *testing.T) {
	repo := New(&mockStore{
		ancestorsFn: func(context.Context, int64, int) ([]db.HierarchyRow, error) {
			return []db.HierarchyRow{{Relative: 5, Distance: 1}}, nil
		},
		descendantsFn: func(context.Context, int64, int) ([]db.HierarchyRow, error) {
			return []db.HierarchyRow{{Relative: 7, Distance: 1}}, nil
		},
	})

	got, err := repo.Relatives(context.Background(), 1, 2, true)
	if err != nil {
		t.Fatalf("Relatives: %v", err)
	}

	want := []domain.HierarchyEdge{{Relative: 5, Distance: 1}, {Relative: 7, Distance: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Relatives: got %+v, want %+v", got, want)
	}
}

func TestRelatives_StoreError(t *testing.T) {
	repo := New(&mockStore{
		ancestorsFn: func(context.Context, int64, int) ([]db.HierarchyRow, error) {
			return nil, errors.New("disk I/O error")
		},
	})

	if _, err := repo.Relatives(context.Background(), 1, 2, false); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestRelatives_DescendantsError(t *testing.T) {
	repo := New(&mockStore{
		ancestorsFn: func(context.Context, int64, int) ([]db.HierarchyRow, error) {
			return []db.HierarchyRow{{Relative: 5, Distance: 1}}, nil
		},
		descendantsFn: func(context.Context, int64, int) ([]db.HierarchyRow, error) {
			return nil, errors.New("disk I/O error")
		},
	})

	if _, err := repo.Relatives(context.Background(), 1, 2, true); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
