package ic

import (
	"context"

	"github.com/jotomicron/mossy/internal/domain"
)

// Neutral is the no-op source used when no IC service is configured:
// every concept gets the multiplicatively neutral value 1.
type Neutral struct{}

// IC always returns 1.
func (Neutral) IC(context.Context, domain.ConceptID) (float64, error) {
	return 1, nil
}
