// Package mossy scores the semantic similarity of ontology items over
// a precomputed closure store: each item expands into a fuzzy
// neighborhood of reachable concepts, and the score is the ratio of
// the two neighborhoods' fuzzy intersection and union.
//
// The package is the in-process entry point; cmd/mossy serves the same
// comparer over HTTP.
//
//	client, err := mossy.New(
//		mossy.WithSQLite("ontology.db"),
//		mossy.WithHierarchyWeight(0.8),
//	)
//	if err != nil { ... }
//	defer client.Close()
//
//	score, err := client.Compare(ctx,
//		mossy.Concept("http://example.org/Heart"),
//		mossy.Concept("http://example.org/Lung"),
//	)
package mossy
