// Package ic adapts optional information-content sources into a
// uniform multiplier for seed-concept weighting.
package ic

import (
	"context"

	"github.com/jotomicron/mossy/internal/domain"
)

// Source yields the information content of a concept in [0,1].
type Source interface {
	IC(ctx context.Context, concept domain.ConceptID) (float64, error)
}
