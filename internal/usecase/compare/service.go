// Package compare scores the semantic similarity of two ontology items
// by expanding each into a fuzzy neighborhood of reachable concepts and
// taking the ratio of the neighborhoods' fuzzy intersection and union.
package compare

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jotomicron/mossy/internal/domain"
	"github.com/jotomicron/mossy/internal/metrics"
)

// Config holds the expansion thresholds fixed at construction.
type Config struct {
	// DistanceThreshold bounds the accumulated hop count of any
	// expansion path. Non-negative.
	DistanceThreshold int
	// WeightThreshold prunes expansion paths whose decayed weight
	// falls below it. In [0,1].
	WeightThreshold float64
	// DiscoverSubclasses extends hierarchy expansion to descendants.
	DiscoverSubclasses bool
}

// Service is the comparer. All fields are read-only after construction,
// so one instance serves concurrent comparisons.
type Service struct {
	relations RelationReader
	hierarchy HierarchyReader
	resolver  Resolver
	ic        ICSource
	weights   WeightTable
	cfg       Config
	logger    *zap.Logger
}

// New creates a comparer.
func New(
	relations RelationReader,
	hierarchy HierarchyReader,
	resolver Resolver,
	ic ICSource,
	weights WeightTable,
	cfg Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		relations: relations,
		hierarchy: hierarchy,
		resolver:  resolver,
		ic:        ic,
		weights:   weights,
		cfg:       cfg,
		logger:    logger,
	}
}

// Compare scores the similarity of two items in [0,1]. Fails with
// domain.ErrUndefinedSimilarity when both neighborhoods are empty, and
// never returns a partially computed score.
func (s *Service) Compare(ctx context.Context, a, b domain.Item) (float64, error) {
	chainsA, err := s.normalize(ctx, a)
	if err != nil {
		return 0, fmt.Errorf("first item: %w", err)
	}
	chainsB, err := s.normalize(ctx, b)
	if err != nil {
		return 0, fmt.Errorf("second item: %w", err)
	}

	n1, err := s.mergeChains(ctx, chainsA)
	if err != nil {
		return 0, fmt.Errorf("first neighborhood: %w", err)
	}
	n2, err := s.mergeChains(ctx, chainsB)
	if err != nil {
		return 0, fmt.Errorf("second neighborhood: %w", err)
	}

	s.logger.Debug("Constructed neighborhoods",
		zap.Int("first_size", len(n1)),
		zap.Int("second_size", len(n2)),
	)
	metrics.NeighborhoodConcepts.Observe(float64(len(n1)))
	metrics.NeighborhoodConcepts.Observe(float64(len(n2)))

	u := union(n1, n2)
	if u == 0 {
		return 0, domain.ErrUndefinedSimilarity
	}
	return intersection(n1, n2) / u, nil
}
