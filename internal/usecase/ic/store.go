package ic

import (
	"context"
	"errors"
	"fmt"

	"github.com/jotomicron/mossy/internal/db"
	"github.com/jotomicron/mossy/internal/domain"
)

// valueStore is the consumer interface for a precomputed IC value store.
type valueStore interface {
	IC(ctx context.Context, concept int64) (float64, error)
}

// StoreSource reads IC values from an external value store. Concepts
// without a stored value get the neutral 1, matching the behavior of
// an unconfigured source for that concept.
type StoreSource struct {
	store valueStore
}

// NewStoreSource creates a store-backed IC source.
func NewStoreSource(s valueStore) *StoreSource {
	return &StoreSource{store: s}
}

// IC returns the stored information content of the concept.
func (s *StoreSource) IC(ctx context.Context, concept domain.ConceptID) (float64, error) {
	ic, err := s.store.IC(ctx, int64(concept))
	if err != nil {
		if errors.Is(err, db.ErrValueNotFound) {
			return 1, nil
		}
		return 0, fmt.Errorf("%w: ic of %d: %w", domain.ErrStoreUnavailable, concept, err)
	}
	return ic, nil
}
