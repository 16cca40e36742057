package ic

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/jotomicron/mossy/internal/domain"
)

// CachedSource is a read-through cache over another IC source. IC
// values are immutable per store generation, so caching never changes
// what a comparison sees; it only removes repeated lookups.
type CachedSource struct {
	inner      Source
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger

	mu     sync.RWMutex
	values map[domain.ConceptID]float64
}

// NewCachedSource creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"); nil disables counting.
func NewCachedSource(inner Source, cacheTotal *prometheus.CounterVec, logger *zap.Logger) *CachedSource {
	return &CachedSource{
		inner:      inner,
		cacheTotal: cacheTotal,
		logger:     logger,
		values:     make(map[domain.ConceptID]float64),
	}
}

// IC returns a cached value or delegates to the inner source.
func (c *CachedSource) IC(ctx context.Context, concept domain.ConceptID) (float64, error) {
	c.mu.RLock()
	ic, ok := c.values[concept]
	c.mu.RUnlock()
	if ok {
		c.incCache("hit")
		return ic, nil
	}

	c.incCache("miss")

	ic, err := c.inner.IC(ctx, concept)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.values[concept] = ic
	c.mu.Unlock()

	c.logger.Debug("Cached IC value",
		zap.Int64("concept", int64(concept)),
		zap.Float64("ic", ic),
	)
	return ic, nil
}

func (c *CachedSource) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}
