// Package entity resolves ontology IRIs to store identifiers.
package entity

import (
	"context"
	"errors"
	"fmt"

	"github.com/jotomicron/mossy/internal/db"
	"github.com/jotomicron/mossy/internal/domain"
)

// store is the consumer interface for identifier resolution.
type store interface {
	EntityID(ctx context.Context, iri, kind string) (int64, error)
}

// Repo implements the usecase resolver contract.
type Repo struct {
	store store
}

// New creates an entity repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Resolve maps an IRI to its store id. The kind disambiguates
// identically-named IRIs across namespaces.
func (r *Repo) Resolve(ctx context.Context, iri string, kind domain.EntityKind) (int64, error) {
	id, err := r.store.EntityID(ctx, iri, string(kind))
	if err != nil {
		if errors.Is(err, db.ErrEntityNotFound) {
			return 0, fmt.Errorf("%w: %s %q", domain.ErrUnknownEntity, kind, iri)
		}
		return 0, fmt.Errorf("%w: resolve %q: %w", domain.ErrStoreUnavailable, iri, err)
	}
	return id, nil
}
