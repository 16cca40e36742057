package domain

// ConceptID is the integer key of an ontology class in the closure store.
type ConceptID int64

// PropertyID is the integer key of an ontology object property.
type PropertyID int64

// EntityKind disambiguates identically-named IRIs across namespaces.
type EntityKind string

const (
	// KindConcept resolves an IRI as an ontology class.
	KindConcept EntityKind = "Concept"
	// KindObjectProperty resolves an IRI as an object property.
	KindObjectProperty EntityKind = "ObjectProperty"
)

// IDChain is an ordered sequence of properties ending in a concept.
// An empty property prefix denotes a bare concept.
type IDChain struct {
	Properties []PropertyID
	Concept    ConceptID
}

// RelationEdge is a precomputed existential-restriction closure edge:
// following Properties from the queried concept reaches End after
// Distance accumulated hops. Distance is always >= 1.
type RelationEdge struct {
	Properties []PropertyID
	End        ConceptID
	Distance   int
}

// HierarchyEdge is a precomputed is-a closure edge reaching Relative
// in Distance hops. Distance is always >= 1.
type HierarchyEdge struct {
	Relative ConceptID
	Distance int
}
