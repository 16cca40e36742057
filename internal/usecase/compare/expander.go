package compare

import (
	"context"
	"math"

	"github.com/jotomicron/mossy/internal/domain"
)

// frontier is one pending expansion step: a concept, the hops spent
// reaching it, and the decayed weight of the path that got there.
type frontier struct {
	concept  domain.ConceptID
	distance int
	weight   float64
}

// mergeChains expands every chain of an item and combines the results
// with elementwise max: an item reaches a concept with weight w if any
// of its chains does.
func (s *Service) mergeChains(ctx context.Context, chains []domain.IDChain) (domain.Neighborhood, error) {
	result := make(domain.Neighborhood)
	for _, chain := range chains {
		neighbors, err := s.expandChain(ctx, chain)
		if err != nil {
			return nil, err
		}
		result.Merge(neighbors)
	}
	return result, nil
}

// expandChain turns one id-chain into the fuzzy set of concepts
// reachable from its terminal concept within the configured thresholds.
//
// Every stored edge has distance >= 1, so the accumulated distance
// strictly increases on every push; pushes are admitted only at or
// below the distance threshold, which bounds the traversal regardless
// of the weight configuration (weights of exactly 1 included).
//
// The worklist is a LIFO stack, but traversal order does not affect
// the result: weights aggregate per concept with max.
func (s *Service) expandChain(ctx context.Context, chain domain.IDChain) (domain.Neighborhood, error) {
	result := make(domain.Neighborhood)

	icSeed, err := s.ic.IC(ctx, chain.Concept)
	if err != nil {
		return nil, err
	}
	seedWeight := s.weights.ChainWeight(chain.Properties) * icSeed

	todo := []frontier{{
		concept:  chain.Concept,
		distance: len(chain.Properties),
		weight:   seedWeight,
	}}

	for len(todo) > 0 {
		cur := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		result.Absorb(cur.concept, cur.weight)

		budget := s.cfg.DistanceThreshold - cur.distance
		if budget <= 0 {
			// Stored edges have distance >= 1; nothing can match.
			continue
		}

		todo, err = s.pushRelations(ctx, cur, budget, todo)
		if err != nil {
			return nil, err
		}

		// A zero hierarchy weight zeroes every hierarchy path, which
		// no positive threshold admits; skip the lookup entirely.
		if s.weights.HierarchyWeight() == 0 {
			continue
		}

		todo, err = s.pushRelatives(ctx, cur, budget, todo)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// pushRelations admits existential closure edges from cur onto the worklist.
func (s *Service) pushRelations(
	ctx context.Context, cur frontier, budget int, todo []frontier,
) ([]frontier, error) {
	edges, err := s.relations.RelationsFrom(ctx, cur.concept, budget)
	if err != nil {
		return nil, err
	}

	for _, edge := range edges {
		next := frontier{
			concept:  edge.End,
			distance: cur.distance + edge.Distance,
			weight:   cur.weight * s.weights.ChainWeight(edge.Properties),
		}
		if s.admit(next) {
			todo = append(todo, next)
		}
	}
	return todo, nil
}

// pushRelatives admits is-a closure edges from cur onto the worklist.
func (s *Service) pushRelatives(
	ctx context.Context, cur frontier, budget int, todo []frontier,
) ([]frontier, error) {
	relatives, err := s.hierarchy.Relatives(ctx, cur.concept, budget, s.cfg.DiscoverSubclasses)
	if err != nil {
		return nil, err
	}

	hw := s.weights.HierarchyWeight()
	for _, rel := range relatives {
		next := frontier{
			concept:  rel.Relative,
			distance: cur.distance + rel.Distance,
			weight:   cur.weight * math.Pow(hw, float64(rel.Distance)),
		}
		if s.admit(next) {
			todo = append(todo, next)
		}
	}
	return todo, nil
}

// admit applies the distance and weight pruning thresholds.
func (s *Service) admit(f frontier) bool {
	return f.distance <= s.cfg.DistanceThreshold && f.weight >= s.cfg.WeightThreshold
}
