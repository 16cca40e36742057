package sqlite

import "fmt"

// Write helpers for tooling, tests, and the bundled example. The
// similarity core itself never writes to the store.

// InsertEntity registers an IRI under the given kind with a fixed id.
func (s *Store) InsertEntity(id int64, iri, kind string) error {
	const query = `INSERT OR IGNORE INTO entities (id, iri, kind) VALUES (?, ?, ?)`
	if _, err := s.conn.Exec(query, id, iri, kind); err != nil {
		return fmt.Errorf("insert entity %s: %w", iri, err)
	}
	return nil
}

// InsertRelation adds one existential-relation closure row. chain is
// the comma-delimited property id sequence.
func (s *Store) InsertRelation(chain string, start, end int64, distance int) error {
	const query = `INSERT INTO existential_relations (chain, start, "end", distance) VALUES (?, ?, ?, ?)`
	if _, err := s.conn.Exec(query, chain, start, end, distance); err != nil {
		return fmt.Errorf("insert relation %d->%d: %w", start, end, err)
	}
	return nil
}

// InsertHierarchy adds one is-a closure row.
func (s *Store) InsertHierarchy(subclass, superclass int64, distance int) error {
	const query = `INSERT INTO hierarchy (subclass, superclass, distance) VALUES (?, ?, ?)`
	if _, err := s.conn.Exec(query, subclass, superclass, distance); err != nil {
		return fmt.Errorf("insert hierarchy %d->%d: %w", subclass, superclass, err)
	}
	return nil
}
