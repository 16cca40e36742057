// Package hierarchy maps is-a closure rows to domain edges.
package hierarchy

import (
	"context"
	"fmt"

	"github.com/jotomicron/mossy/internal/db"
	"github.com/jotomicron/mossy/internal/domain"
)

// store is the consumer interface for hierarchy queries.
type store interface {
	Ancestors(ctx context.Context, concept int64, maxDistance int) ([]db.HierarchyRow, error)
	Descendants(ctx context.Context, concept int64, maxDistance int) ([]db.HierarchyRow, error)
}

// Repo implements the usecase hierarchy contract.
type Repo struct {
	store store
}

// New creates a hierarchy repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Relatives returns is-a edges reachable from the concept within
// maxDistance hops: superclasses always, subclasses additionally when
// includeDescendants is set.
func (r *Repo) Relatives(
	ctx context.Context, concept domain.ConceptID, maxDistance int, includeDescendants bool,
) ([]domain.HierarchyEdge, error) {
	rows, err := r.store.Ancestors(ctx, int64(concept), maxDistance)
	if err != nil {
		return nil, fmt.Errorf("%w: ancestors of %d: %w", domain.ErrStoreUnavailable, concept, err)
	}

	if includeDescendants {
		down, err := r.store.Descendants(ctx, int64(concept), maxDistance)
		if err != nil {
			return nil, fmt.Errorf("%w: descendants of %d: %w", domain.ErrStoreUnavailable, concept, err)
		}
		rows = append(rows, down...)
	}

	edges := make([]domain.HierarchyEdge, len(rows))
	for i, row := range rows {
		edges[i] = domain.HierarchyEdge{
			Relative: domain.ConceptID(row.Relative),
			Distance: row.Distance,
		}
	}
	return edges, nil
}
