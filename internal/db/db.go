// Package db defines the closure-store contract shared by drivers and
// repositories. Rows carry raw store values; repositories map them to
// domain types.
package db

import "context"

// Store is the main closure-store facade combining all sub-interfaces.
// Consumers depend on the narrow sub-interfaces.
type Store interface {
	Pinger
	RelationReader
	HierarchyReader
	EntityReader
	UsageReader
	Close() error
}

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RelationRow is one existential-relation closure row. Chain encodes
// the ordered property ids as a comma-delimited string, as stored.
type RelationRow struct {
	Chain    string
	End      int64
	Distance int
}

// RelationReader queries existential-relation closure edges.
type RelationReader interface {
	// RelationsFrom returns every relation row starting at the given
	// concept with recorded distance <= maxDistance.
	RelationsFrom(ctx context.Context, start int64, maxDistance int) ([]RelationRow, error)
}

// HierarchyRow is one is-a closure row.
type HierarchyRow struct {
	Relative int64
	Distance int
}

// HierarchyReader queries is-a closure edges in both directions.
type HierarchyReader interface {
	// Ancestors returns superclasses of the concept within maxDistance hops.
	Ancestors(ctx context.Context, concept int64, maxDistance int) ([]HierarchyRow, error)
	// Descendants returns subclasses of the concept within maxDistance hops.
	Descendants(ctx context.Context, concept int64, maxDistance int) ([]HierarchyRow, error)
}

// EntityReader resolves IRIs to store identifiers.
type EntityReader interface {
	// EntityID returns the id registered for the IRI under the given
	// kind. Returns ErrEntityNotFound when no row matches.
	EntityID(ctx context.Context, iri, kind string) (int64, error)
}

// PropertyCount is the direct-relation usage count of one property.
type PropertyCount struct {
	Property int64
	Count    int64
}

// UsageReader exposes the aggregate queries behind frequency-based
// property weighting.
type UsageReader interface {
	// RelationCount returns the total number of existential-relation rows.
	RelationCount(ctx context.Context) (int64, error)
	// DirectPropertyCounts returns, per property, the number of
	// distance-1 relation rows using it.
	DirectPropertyCounts(ctx context.Context) ([]PropertyCount, error)
}
