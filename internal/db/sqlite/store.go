// Package sqlite implements the closure store over SQLite. The
// database/sql pool hands each query its own connection, so concurrent
// comparisons never share a cursor and no global lock is needed.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jotomicron/mossy/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Store reads precomputed hierarchy and existential-relation closures.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database at path.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	return &Store{conn: conn}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (s *Store) Close() error {
	return s.conn.Close()
}

// RelationsFrom returns existential-relation rows starting at the given
// concept with distance <= maxDistance.
func (s *Store) RelationsFrom(ctx context.Context, start int64, maxDistance int) ([]db.RelationRow, error) {
	const query = `SELECT chain, "end", distance FROM existential_relations WHERE start = ? AND distance <= ?`

	rows, err := s.conn.QueryContext(ctx, query, start, maxDistance)
	if err != nil {
		return nil, &db.Error{Op: db.OpRelationsFrom, Err: err}
	}
	defer rows.Close()

	var out []db.RelationRow
	for rows.Next() {
		var r db.RelationRow
		if err := rows.Scan(&r.Chain, &r.End, &r.Distance); err != nil {
			return nil, &db.Error{Op: db.OpRelationsFrom, Err: err}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpRelationsFrom, Err: err}
	}
	return out, nil
}

// Ancestors returns superclasses of the concept within maxDistance hops.
func (s *Store) Ancestors(ctx context.Context, concept int64, maxDistance int) ([]db.HierarchyRow, error) {
	const query = `SELECT superclass, distance FROM hierarchy WHERE subclass = ? AND distance <= ?`
	return s.hierarchyRows(ctx, db.OpAncestors, query, concept, maxDistance)
}

// Descendants returns subclasses of the concept within maxDistance hops.
func (s *Store) Descendants(ctx context.Context, concept int64, maxDistance int) ([]db.HierarchyRow, error) {
	const query = `SELECT subclass, distance FROM hierarchy WHERE superclass = ? AND distance <= ?`
	return s.hierarchyRows(ctx, db.OpDescendants, query, concept, maxDistance)
}

func (s *Store) hierarchyRows(
	ctx context.Context, op, query string, concept int64, maxDistance int,
) ([]db.HierarchyRow, error) {
	rows, err := s.conn.QueryContext(ctx, query, concept, maxDistance)
	if err != nil {
		return nil, &db.Error{Op: op, Err: err}
	}
	defer rows.Close()

	var out []db.HierarchyRow
	for rows.Next() {
		var r db.HierarchyRow
		if err := rows.Scan(&r.Relative, &r.Distance); err != nil {
			return nil, &db.Error{Op: op, Err: err}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: op, Err: err}
	}
	return out, nil
}

// EntityID resolves an IRI of the given kind to its store id.
func (s *Store) EntityID(ctx context.Context, iri, kind string) (int64, error) {
	const query = `SELECT id FROM entities WHERE iri = ? AND kind = ?`

	var id int64
	err := s.conn.QueryRowContext(ctx, query, iri, kind).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, db.ErrEntityNotFound
	}
	if err != nil {
		return 0, &db.Error{Op: db.OpEntityID, Err: err}
	}
	return id, nil
}

// RelationCount returns the total number of existential-relation rows.
func (s *Store) RelationCount(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM existential_relations`

	var total int64
	if err := s.conn.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, &db.Error{Op: db.OpRelationCount, Err: err}
	}
	return total, nil
}

// DirectPropertyCounts returns the distance-1 row count per property.
// At distance 1 the stored chain is a single property id.
func (s *Store) DirectPropertyCounts(ctx context.Context) ([]db.PropertyCount, error) {
	const query = `SELECT chain, COUNT(*) FROM existential_relations WHERE distance = 1 GROUP BY chain`

	rows, err := s.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, &db.Error{Op: db.OpPropertyCounts, Err: err}
	}
	defer rows.Close()

	var out []db.PropertyCount
	for rows.Next() {
		var c db.PropertyCount
		if err := rows.Scan(&c.Property, &c.Count); err != nil {
			return nil, &db.Error{Op: db.OpPropertyCounts, Err: err}
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpPropertyCounts, Err: err}
	}
	return out, nil
}
