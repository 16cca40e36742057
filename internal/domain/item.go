package domain

import "fmt"

// itemShape is the closed set of accepted input shapes.
type itemShape int

const (
	shapeInvalid itemShape = iota
	shapeConcept
	shapeConceptList
	shapeChainList
)

// Item is one side of a comparison: a single concept IRI, a list of
// concept IRIs, or a list of property-chains each terminating in a
// concept IRI. The shape is fixed at construction; ChainIRIs renders
// every shape as a uniform list of IRI chains.
type Item struct {
	shape    itemShape
	concept  string
	concepts []string
	chains   [][]string
}

// NewConcept builds an item from a single concept IRI.
func NewConcept(iri string) Item {
	return Item{shape: shapeConcept, concept: iri}
}

// NewConceptList builds an item from a list of concept IRIs.
func NewConceptList(iris []string) Item {
	return Item{shape: shapeConceptList, concepts: iris}
}

// NewChainList builds an item from property-chains, each a sequence of
// property IRIs followed by exactly one concept IRI.
func NewChainList(chains [][]string) Item {
	return Item{shape: shapeChainList, chains: chains}
}

// ChainIRIs converts the item into a uniform list of IRI chains, each
// ending in a concept IRI. Returns ErrInvalidInputShape for a
// zero-value Item, an empty item, an empty IRI, or an empty chain.
func (i Item) ChainIRIs() ([][]string, error) {
	switch i.shape {
	case shapeConcept:
		if i.concept == "" {
			return nil, fmt.Errorf("%w: empty concept IRI", ErrInvalidInputShape)
		}
		return [][]string{{i.concept}}, nil

	case shapeConceptList:
		if len(i.concepts) == 0 {
			return nil, fmt.Errorf("%w: empty concept list", ErrInvalidInputShape)
		}
		chains := make([][]string, len(i.concepts))
		for n, iri := range i.concepts {
			if iri == "" {
				return nil, fmt.Errorf("%w: empty concept IRI at index %d", ErrInvalidInputShape, n)
			}
			chains[n] = []string{iri}
		}
		return chains, nil

	case shapeChainList:
		if len(i.chains) == 0 {
			return nil, fmt.Errorf("%w: empty chain list", ErrInvalidInputShape)
		}
		chains := make([][]string, len(i.chains))
		for n, chain := range i.chains {
			if len(chain) == 0 {
				return nil, fmt.Errorf("%w: empty chain at index %d", ErrInvalidInputShape, n)
			}
			for _, iri := range chain {
				if iri == "" {
					return nil, fmt.Errorf("%w: empty IRI in chain at index %d", ErrInvalidInputShape, n)
				}
			}
			chains[n] = chain
		}
		return chains, nil

	default:
		return nil, fmt.Errorf("%w: item must be a concept, a concept list, or a chain list", ErrInvalidInputShape)
	}
}
