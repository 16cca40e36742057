package compare

import "github.com/jotomicron/mossy/internal/domain"

// intersection is the summed algebraic-product t-norm: a continuous
// generalization of intersection cardinality. Concepts absent from one
// side contribute nothing.
func intersection(n1, n2 domain.Neighborhood) float64 {
	result := 0.0
	for c, w1 := range n1 {
		result += w1 * n2[c]
	}
	return result
}

// union is the summed probabilistic-sum t-conorm over the key union.
// Absent concepts weigh 0.
func union(n1, n2 domain.Neighborhood) float64 {
	result := 0.0
	for c, w1 := range n1 {
		w2 := n2[c]
		result += w1 + w2 - w1*w2
	}
	for c, w2 := range n2 {
		if _, seen := n1[c]; !seen {
			result += w2
		}
	}
	return result
}
