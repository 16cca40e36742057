package compare

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/jotomicron/mossy/internal/domain"
	"github.com/jotomicron/mossy/internal/usecase/ic"
	"github.com/jotomicron/mossy/internal/usecase/weights"
)

// graph is an in-memory closure store for tests. Lookups honor the
// same distance bound the SQL queries apply.
type graph struct {
	relations map[domain.ConceptID][]domain.RelationEdge
	ancestors map[domain.ConceptID][]domain.HierarchyEdge
	descends  map[domain.ConceptID][]domain.HierarchyEdge
}

func (g *graph) RelationsFrom(
	_ context.Context, start domain.ConceptID, maxDistance int,
) ([]domain.RelationEdge, error) {
	var out []domain.RelationEdge
	for _, e := range g.relations[start] {
		if e.Distance <= maxDistance {
			out = append(out, e)
		}
	}
	return out, nil
}

func (g *graph) Relatives(
	_ context.Context, concept domain.ConceptID, maxDistance int, includeDescendants bool,
) ([]domain.HierarchyEdge, error) {
	var out []domain.HierarchyEdge
	for _, e := range g.ancestors[concept] {
		if e.Distance <= maxDistance {
			out = append(out, e)
		}
	}
	if includeDescendants {
		for _, e := range g.descends[concept] {
			if e.Distance <= maxDistance {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

// mockResolver resolves IRIs from a fixed table.
type mockResolver struct {
	ids       map[string]int64
	resolveFn func(ctx context.Context, iri string, kind domain.EntityKind) (int64, error)
}

func (m *mockResolver) Resolve(ctx context.Context, iri string, kind domain.EntityKind) (int64, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, iri, kind)
	}
	id, ok := m.ids[string(kind)+":"+iri]
	if !ok {
		return 0, domain.ErrUnknownEntity
	}
	return id, nil
}

// mockIC returns per-concept IC values, defaulting to 1.
type mockIC struct {
	values map[domain.ConceptID]float64
}

func (m *mockIC) IC(_ context.Context, c domain.ConceptID) (float64, error) {
	if v, ok := m.values[c]; ok {
		return v, nil
	}
	return 1, nil
}

// uniformTable builds a weight table with no per-property entries.
func uniformTable(defaultWeight, hierarchyWeight float64) *weights.Table {
	return weights.NewTable(nil, nil, defaultWeight, hierarchyWeight)
}

// newTestService assembles a comparer over an in-memory graph.
func newTestService(
	t *testing.T, g *graph, table *weights.Table, resolver *mockResolver, cfg Config,
) *Service {
	t.Helper()
	if g.relations == nil {
		g.relations = map[domain.ConceptID][]domain.RelationEdge{}
	}
	if g.ancestors == nil {
		g.ancestors = map[domain.ConceptID][]domain.HierarchyEdge{}
	}
	if g.descends == nil {
		g.descends = map[domain.ConceptID][]domain.HierarchyEdge{}
	}
	if resolver == nil {
		resolver = &mockResolver{}
	}
	return New(g, g, resolver, ic.Neutral{}, table, cfg, zap.NewNop())
}

// relEdge builds a single-property existential edge.
func relEdge(prop domain.PropertyID, end domain.ConceptID, distance int) domain.RelationEdge {
	return domain.RelationEdge{Properties: []domain.PropertyID{prop}, End: end, Distance: distance}
}
