package weights

import (
	"context"
	"fmt"
	"math"

	"github.com/jotomicron/mossy/internal/domain"
)

// UsageReader supplies the aggregate relation counts behind the
// frequency-based derivation.
type UsageReader interface {
	TotalRelations(ctx context.Context) (int64, error)
	DirectPropertyCounts(ctx context.Context) (map[domain.PropertyID]int64, error)
}

// DeriveLogScale assigns each observed property a weight inversely
// proportional to the logarithm of its direct-relation usage count,
// rescaled into [scaleMin, scaleMax]:
//
//	weight(p) = scaleMin + (scaleMax-scaleMin) * (1 - ln(count) / ln(total))
//
// Frequent properties distinguish less and decay harder. A store with
// total <= 1 has no usable frequency signal, so every observed
// property gets scaleMax.
func DeriveLogScale(
	ctx context.Context, usage UsageReader, scaleMin, scaleMax float64,
) (map[domain.PropertyID]float64, error) {
	total, err := usage.TotalRelations(ctx)
	if err != nil {
		return nil, fmt.Errorf("derive log-scale weights: %w", err)
	}

	counts, err := usage.DirectPropertyCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("derive log-scale weights: %w", err)
	}

	weights := make(map[domain.PropertyID]float64, len(counts))

	if total <= 1 {
		for p := range counts {
			weights[p] = scaleMax
		}
		return weights, nil
	}

	logTotal := math.Log(float64(total))
	for p, count := range counts {
		rarity := 1 - math.Log(float64(count))/logTotal
		weights[p] = scaleMin + (scaleMax-scaleMin)*rarity
	}
	return weights, nil
}
