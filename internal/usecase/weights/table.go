// Package weights holds the property weight table and the
// frequency-based derivation that can populate it.
package weights

import "github.com/jotomicron/mossy/internal/domain"

// Table maps properties to decay weights in [0,1]. The hierarchy
// weight is a separate scalar rather than a sentinel key, so it can
// never collide with a real property id. Immutable after construction.
type Table struct {
	perProperty     map[domain.PropertyID]float64
	defaultWeight   float64
	hierarchyWeight float64
}

// NewTable builds a table in the required precedence order: derived
// frequency weights first (forcing the default weight to 0), explicit
// overrides second, the hierarchy weight last. Either map may be nil.
func NewTable(
	derived map[domain.PropertyID]float64,
	overrides map[domain.PropertyID]float64,
	defaultWeight, hierarchyWeight float64,
) *Table {
	per := make(map[domain.PropertyID]float64, len(derived)+len(overrides))

	if derived != nil {
		for p, w := range derived {
			per[p] = w
		}
		// Derived tables cover every observed property; anything
		// unlisted was never used and contributes nothing.
		defaultWeight = 0
	}
	for p, w := range overrides {
		per[p] = w
	}

	return &Table{
		perProperty:     per,
		defaultWeight:   defaultWeight,
		hierarchyWeight: hierarchyWeight,
	}
}

// WeightOf returns the weight configured for the property, or the
// default weight when absent.
func (t *Table) WeightOf(p domain.PropertyID) float64 {
	if w, ok := t.perProperty[p]; ok {
		return w
	}
	return t.defaultWeight
}

// ChainWeight returns the product of the weights of all properties in
// the chain. An empty chain weighs 1.
func (t *Table) ChainWeight(props []domain.PropertyID) float64 {
	weight := 1.0
	for _, p := range props {
		weight *= t.WeightOf(p)
	}
	return weight
}

// HierarchyWeight returns the decay weight of one is-a hop.
func (t *Table) HierarchyWeight() float64 {
	return t.hierarchyWeight
}

// DefaultWeight returns the weight used for unlisted properties.
func (t *Table) DefaultWeight() float64 {
	return t.defaultWeight
}

// Snapshot returns a copy of the per-property weights for inspection.
func (t *Table) Snapshot() map[domain.PropertyID]float64 {
	out := make(map[domain.PropertyID]float64, len(t.perProperty))
	for p, w := range t.perProperty {
		out[p] = w
	}
	return out
}
