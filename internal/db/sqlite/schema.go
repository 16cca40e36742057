package sqlite

import "fmt"

// InitSchema creates the closure tables if they do not exist. Closure
// rows are normally produced by an external ontology loader; tests and
// the bundled example seed them through this schema.
func (s *Store) InitSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS entities (
		id INTEGER PRIMARY KEY,
		iri TEXT NOT NULL,
		kind TEXT NOT NULL,
		UNIQUE (iri, kind)
	);
	CREATE INDEX IF NOT EXISTS idx_entities_iri ON entities(iri);

	CREATE TABLE IF NOT EXISTS existential_relations (
		chain TEXT NOT NULL,
		start INTEGER NOT NULL,
		"end" INTEGER NOT NULL,
		distance INTEGER NOT NULL CHECK (distance >= 1)
	);
	CREATE INDEX IF NOT EXISTS idx_relations_start ON existential_relations(start, distance);
	CREATE INDEX IF NOT EXISTS idx_relations_distance ON existential_relations(distance);

	CREATE TABLE IF NOT EXISTS hierarchy (
		subclass INTEGER NOT NULL,
		superclass INTEGER NOT NULL,
		distance INTEGER NOT NULL CHECK (distance >= 1)
	);
	CREATE INDEX IF NOT EXISTS idx_hierarchy_sub ON hierarchy(subclass, distance);
	CREATE INDEX IF NOT EXISTS idx_hierarchy_super ON hierarchy(superclass, distance);
	`

	if _, err := s.conn.Exec(schema); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}
