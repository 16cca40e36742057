// Package relation maps existential-relation closure rows to domain edges.
package relation

import (
	"context"
	"fmt"

	"github.com/jotomicron/mossy/internal/db"
	"github.com/jotomicron/mossy/internal/domain"
)

// store is the consumer interface for relation queries.
type store interface {
	RelationsFrom(ctx context.Context, start int64, maxDistance int) ([]db.RelationRow, error)
	RelationCount(ctx context.Context) (int64, error)
	DirectPropertyCounts(ctx context.Context) ([]db.PropertyCount, error)
}

// Repo implements usecase relation and usage contracts.
type Repo struct {
	store store
}

// New creates a relation repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// RelationsFrom returns the existential closure edges starting at the
// concept with recorded distance <= maxDistance.
func (r *Repo) RelationsFrom(
	ctx context.Context, start domain.ConceptID, maxDistance int,
) ([]domain.RelationEdge, error) {
	rows, err := r.store.RelationsFrom(ctx, int64(start), maxDistance)
	if err != nil {
		return nil, fmt.Errorf("%w: relations from %d: %w", domain.ErrStoreUnavailable, start, err)
	}

	edges := make([]domain.RelationEdge, 0, len(rows))
	for _, row := range rows {
		edge, err := edgeFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("relations from %d: %w", start, err)
		}
		edges = append(edges, edge)
	}
	return edges, nil
}

// TotalRelations returns the total existential-relation row count.
func (r *Repo) TotalRelations(ctx context.Context) (int64, error) {
	total, err := r.store.RelationCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: relation count: %w", domain.ErrStoreUnavailable, err)
	}
	return total, nil
}

// DirectPropertyCounts returns the distance-1 usage count per property.
func (r *Repo) DirectPropertyCounts(ctx context.Context) (map[domain.PropertyID]int64, error) {
	rows, err := r.store.DirectPropertyCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: property counts: %w", domain.ErrStoreUnavailable, err)
	}

	counts := make(map[domain.PropertyID]int64, len(rows))
	for _, row := range rows {
		counts[domain.PropertyID(row.Property)] = row.Count
	}
	return counts, nil
}
