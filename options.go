package mossy

import (
	"fmt"

	"go.uber.org/zap"
)

// Option configures a Client.
type Option func(*clientConfig)

type logScaleConfig struct {
	min, max float64
}

type clientConfig struct {
	sqlitePath string

	distanceThreshold  int
	weightThreshold    float64
	defaultWeight      float64
	hierarchyWeight    float64
	discoverSubclasses bool
	propertyWeights    map[string]float64
	logScale           *logScaleConfig

	icAddrs     []string
	icPassword  string
	icKeyPrefix string
	icCache     bool

	logger *zap.Logger
}

func defaultClientConfig() clientConfig {
	return clientConfig{
		distanceThreshold: 3,
		weightThreshold:   0.3,
		defaultWeight:     0.7,
		hierarchyWeight:   0.8,
		logger:            noopLogger(),
	}
}

func (c *clientConfig) validate() error {
	if c.distanceThreshold < 0 {
		return fmt.Errorf("distance threshold must be non-negative, got %d", c.distanceThreshold)
	}
	for name, v := range map[string]float64{
		"weight threshold": c.weightThreshold,
		"default weight":   c.defaultWeight,
		"hierarchy weight": c.hierarchyWeight,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0,1], got %v", name, v)
		}
	}
	for iri, w := range c.propertyWeights {
		if w < 0 || w > 1 {
			return fmt.Errorf("weight of %q must be in [0,1], got %v", iri, w)
		}
	}
	if c.logScale != nil && c.logScale.min > c.logScale.max {
		return fmt.Errorf("log-scale min %v exceeds max %v", c.logScale.min, c.logScale.max)
	}
	return nil
}

// WithSQLite sets the path of the SQLite closure store. Required.
func WithSQLite(path string) Option {
	return func(c *clientConfig) { c.sqlitePath = path }
}

// WithDistanceThreshold bounds the accumulated hop count of expansion
// paths. Default 3.
func WithDistanceThreshold(d int) Option {
	return func(c *clientConfig) { c.distanceThreshold = d }
}

// WithWeightThreshold prunes expansion paths whose decayed weight falls
// below the threshold. Default 0.3.
func WithWeightThreshold(w float64) Option {
	return func(c *clientConfig) { c.weightThreshold = w }
}

// WithDefaultWeight sets the weight of properties without an explicit
// entry. Default 0.7. Ignored when WithLogScaleWeights is used: the
// default then becomes 0.
func WithDefaultWeight(w float64) Option {
	return func(c *clientConfig) { c.defaultWeight = w }
}

// WithHierarchyWeight sets the decay weight of one is-a hop. Default 0.8.
func WithHierarchyWeight(w float64) Option {
	return func(c *clientConfig) { c.hierarchyWeight = w }
}

// WithDiscoverSubclasses extends hierarchy expansion to descendants.
func WithDiscoverSubclasses() Option {
	return func(c *clientConfig) { c.discoverSubclasses = true }
}

// WithPropertyWeights sets explicit per-property weights by IRI. These
// take precedence over log-scale derived weights.
func WithPropertyWeights(weights map[string]float64) Option {
	return func(c *clientConfig) {
		if c.propertyWeights == nil {
			c.propertyWeights = make(map[string]float64, len(weights))
		}
		for iri, w := range weights {
			c.propertyWeights[iri] = w
		}
	}
}

// WithLogScaleWeights derives per-property weights from usage
// frequency, rescaled into [min, max].
func WithLogScaleWeights(min, max float64) Option {
	return func(c *clientConfig) { c.logScale = &logScaleConfig{min: min, max: max} }
}

// WithInformationContent reads IC values from a Redis/Valkey store.
func WithInformationContent(addrs []string, password, keyPrefix string) Option {
	return func(c *clientConfig) {
		c.icAddrs = addrs
		c.icPassword = password
		c.icKeyPrefix = keyPrefix
	}
}

// WithICCache caches IC lookups in process.
func WithICCache() Option {
	return func(c *clientConfig) { c.icCache = true }
}

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
