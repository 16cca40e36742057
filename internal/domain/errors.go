package domain

import "errors"

var (
	// ErrInvalidInputShape signals an item that is neither a concept,
	// a concept list, nor a chain list.
	ErrInvalidInputShape = errors.New("invalid input shape")
	// ErrUnknownEntity signals an IRI the store cannot resolve.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrStoreUnavailable signals a failed closure-store query.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrUndefinedSimilarity signals that both neighborhoods are empty,
	// so the fuzzy union is zero and the ratio is undefined.
	ErrUndefinedSimilarity = errors.New("undefined similarity: both neighborhoods are empty")
)
