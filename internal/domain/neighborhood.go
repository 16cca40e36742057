package domain

// Neighborhood is a fuzzy set of concepts reachable from an item,
// mapping each concept to its membership weight in [0,1].
type Neighborhood map[ConceptID]float64

// Absorb records a weight for a concept, keeping the higher of the
// existing and the new weight (fuzzy union of paths).
func (n Neighborhood) Absorb(c ConceptID, weight float64) {
	if weight > n[c] {
		n[c] = weight
	}
}

// Merge folds another neighborhood into this one with elementwise max.
func (n Neighborhood) Merge(other Neighborhood) {
	for c, w := range other {
		n.Absorb(c, w)
	}
}
