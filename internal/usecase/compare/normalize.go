package compare

import (
	"context"
	"fmt"

	"github.com/jotomicron/mossy/internal/domain"
)

// normalize converts an item into id-chains: every shape becomes a list
// of IRI chains, then each property and terminal concept IRI is
// resolved to its store id.
func (s *Service) normalize(ctx context.Context, item domain.Item) ([]domain.IDChain, error) {
	iriChains, err := item.ChainIRIs()
	if err != nil {
		return nil, err
	}

	chains := make([]domain.IDChain, len(iriChains))
	for i, iris := range iriChains {
		chain, err := s.resolveChain(ctx, iris)
		if err != nil {
			return nil, err
		}
		chains[i] = chain
	}
	return chains, nil
}

// resolveChain maps [prop-IRI ... concept-IRI] to an IDChain.
func (s *Service) resolveChain(ctx context.Context, iris []string) (domain.IDChain, error) {
	last := len(iris) - 1

	var props []domain.PropertyID
	if last > 0 {
		props = make([]domain.PropertyID, last)
		for i, iri := range iris[:last] {
			id, err := s.resolver.Resolve(ctx, iri, domain.KindObjectProperty)
			if err != nil {
				return domain.IDChain{}, fmt.Errorf("chain property: %w", err)
			}
			props[i] = domain.PropertyID(id)
		}
	}

	concept, err := s.resolver.Resolve(ctx, iris[last], domain.KindConcept)
	if err != nil {
		return domain.IDChain{}, fmt.Errorf("chain concept: %w", err)
	}

	return domain.IDChain{Properties: props, Concept: domain.ConceptID(concept)}, nil
}
