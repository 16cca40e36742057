package compare

import (
	"context"

	"github.com/jotomicron/mossy/internal/domain"
)

// RelationReader queries existential closure edges.
type RelationReader interface {
	RelationsFrom(ctx context.Context, start domain.ConceptID, maxDistance int) ([]domain.RelationEdge, error)
}

// HierarchyReader queries is-a closure edges.
type HierarchyReader interface {
	Relatives(ctx context.Context, concept domain.ConceptID, maxDistance int, includeDescendants bool) ([]domain.HierarchyEdge, error)
}

// Resolver maps IRIs to store identifiers.
type Resolver interface {
	Resolve(ctx context.Context, iri string, kind domain.EntityKind) (int64, error)
}

// ICSource yields the information content of a concept.
type ICSource interface {
	IC(ctx context.Context, concept domain.ConceptID) (float64, error)
}

// WeightTable supplies decay weights for properties and is-a hops.
type WeightTable interface {
	WeightOf(p domain.PropertyID) float64
	ChainWeight(props []domain.PropertyID) float64
	HierarchyWeight() float64
}
