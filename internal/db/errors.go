package db

import "errors"

// Sentinel errors for closure-store operations.
var (
	ErrEntityNotFound = errors.New("db: entity not found")
	ErrValueNotFound  = errors.New("db: value not found")
)

// Op constants name the store queries for error context.
const (
	OpRelationsFrom  = "relations_from"
	OpAncestors      = "ancestors"
	OpDescendants    = "descendants"
	OpEntityID       = "entity_id"
	OpRelationCount  = "relation_count"
	OpPropertyCounts = "property_counts"
	OpICGet          = "ic_get"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
