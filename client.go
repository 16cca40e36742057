package mossy

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	dbRedis "github.com/jotomicron/mossy/internal/db/redis"
	dbSqlite "github.com/jotomicron/mossy/internal/db/sqlite"
	"github.com/jotomicron/mossy/internal/domain"
	entityrepo "github.com/jotomicron/mossy/internal/repository/entity"
	hierarchyrepo "github.com/jotomicron/mossy/internal/repository/hierarchy"
	relationrepo "github.com/jotomicron/mossy/internal/repository/relation"
	compareuc "github.com/jotomicron/mossy/internal/usecase/compare"
	icuc "github.com/jotomicron/mossy/internal/usecase/ic"
	weightsuc "github.com/jotomicron/mossy/internal/usecase/weights"
)

// Item is one side of a comparison.
type Item = domain.Item

// Concept builds an item from a single concept IRI.
func Concept(iri string) Item { return domain.NewConcept(iri) }

// ConceptList builds an item from a list of concept IRIs.
func ConceptList(iris ...string) Item { return domain.NewConceptList(iris) }

// ChainList builds an item from property-chains, each a sequence of
// property IRIs followed by exactly one concept IRI.
func ChainList(chains ...[]string) Item { return domain.NewChainList(chains) }

// Comparison error sentinels, testable with errors.Is.
var (
	ErrInvalidInputShape   = domain.ErrInvalidInputShape
	ErrUnknownEntity       = domain.ErrUnknownEntity
	ErrStoreUnavailable    = domain.ErrStoreUnavailable
	ErrUndefinedSimilarity = domain.ErrUndefinedSimilarity
)

// Client is the mossy SDK entry point. Safe for concurrent use.
type Client struct {
	store    *dbSqlite.Store
	icStore  *dbRedis.Store
	comparer *compareuc.Service
}

// New opens the closure store and builds a comparer from the options.
func New(opts ...Option) (*Client, error) {
	cfg := defaultClientConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.sqlitePath == "" {
		return nil, errors.New("mossy: closure store path required (use WithSQLite)")
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("mossy: %w", err)
	}

	store, err := dbSqlite.Open(cfg.sqlitePath)
	if err != nil {
		return nil, fmt.Errorf("mossy: open closure store: %w", err)
	}

	client, err := wireClient(store, cfg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return client, nil
}

func wireClient(store *dbSqlite.Store, cfg clientConfig) (*Client, error) {
	ctx := context.Background()

	relations := relationrepo.New(store)
	relatives := hierarchyrepo.New(store)
	entities := entityrepo.New(store)

	var derived map[domain.PropertyID]float64
	if cfg.logScale != nil {
		var err error
		derived, err = weightsuc.DeriveLogScale(ctx, relations, cfg.logScale.min, cfg.logScale.max)
		if err != nil {
			return nil, fmt.Errorf("mossy: %w", err)
		}
	}

	overrides := make(map[domain.PropertyID]float64, len(cfg.propertyWeights))
	for iri, weight := range cfg.propertyWeights {
		id, err := entities.Resolve(ctx, iri, domain.KindObjectProperty)
		if err != nil {
			return nil, fmt.Errorf("mossy: property weight for %q: %w", iri, err)
		}
		overrides[domain.PropertyID(id)] = weight
	}

	table := weightsuc.NewTable(derived, overrides, cfg.defaultWeight, cfg.hierarchyWeight)

	var icSource icuc.Source = icuc.Neutral{}
	var icStore *dbRedis.Store
	if len(cfg.icAddrs) > 0 {
		var err error
		icStore, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:     cfg.icAddrs,
			Password:  cfg.icPassword,
			KeyPrefix: cfg.icKeyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("mossy: connect IC store: %w", err)
		}
		icSource = icuc.NewStoreSource(icStore)
	}
	if cfg.icCache {
		icSource = icuc.NewCachedSource(icSource, nil, cfg.logger)
	}

	comparer := compareuc.New(relations, relatives, entities, icSource, table, compareuc.Config{
		DistanceThreshold:  cfg.distanceThreshold,
		WeightThreshold:    cfg.weightThreshold,
		DiscoverSubclasses: cfg.discoverSubclasses,
	}, cfg.logger)

	return &Client{store: store, icStore: icStore, comparer: comparer}, nil
}

// Compare scores the similarity of two items in [0,1].
func (c *Client) Compare(ctx context.Context, a, b Item) (float64, error) {
	return c.comparer.Compare(ctx, a, b)
}

// Close releases the store connections.
func (c *Client) Close() error {
	if c.icStore != nil {
		c.icStore.Close()
	}
	return c.store.Close()
}

// noopLogger is used when the caller supplies none.
func noopLogger() *zap.Logger { return zap.NewNop() }
