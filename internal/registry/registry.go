// Package registry provides the host-side SQLite store of citations
// collected from plugins.
package registry

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/citekit/citekit/citation"
)

// Registry is a SQLite-backed citation collection. Entries are stored with
// their content fingerprint; adding an entry whose content is already
// present is a no-op, so the registry is deduplicated at ingest using the
// same equality rule the collision resolver applies at export.
type Registry struct {
	db *sql.DB
}

const schema = `
	CREATE TABLE IF NOT EXISTS citations (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		fingerprint TEXT NOT NULL UNIQUE,
		kind        TEXT NOT NULL,
		app         TEXT,
		entry_json  TEXT NOT NULL,
		added_at    TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_citations_app ON citations(app);
	CREATE INDEX IF NOT EXISTS idx_citations_kind ON citations(kind);
`

// Open opens (creating if necessary) a registry database at path.
func Open(path string) (*Registry, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating citations schema: %w", err)
	}

	return &Registry{db: db}, nil
}

// Close releases the underlying database handle.
func (r *Registry) Close() error {
	return r.db.Close()
}

// Add stores one citation. Returns false if an entry with equal content
// (key and app excluded) was already registered.
func (r *Registry) Add(e *citation.Entry) (bool, error) {
	if err := e.Validate(); err != nil {
		return false, err
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return false, fmt.Errorf("encoding citation: %w", err)
	}

	res, err := r.db.Exec(`
		INSERT OR IGNORE INTO citations (fingerprint, kind, app, entry_json, added_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.Fingerprint(), string(e.Kind), e.App, string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, fmt.Errorf("inserting citation: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking insert result: %w", err)
	}
	return n > 0, nil
}

// AddAll stores a batch of citations, returning how many were newly added
// (duplicates are skipped, not errors).
func (r *Registry) AddAll(entries []*citation.Entry) (int, error) {
	added := 0
	for i, e := range entries {
		ok, err := r.Add(e)
		if err != nil {
			return added, fmt.Errorf("entry %d: %w", i, err)
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// All returns every registered citation in insertion order, the order the
// collision resolver preserves at export time.
func (r *Registry) All() ([]*citation.Entry, error) {
	rows, err := r.db.Query(`SELECT entry_json FROM citations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying citations: %w", err)
	}
	defer rows.Close()

	var entries []*citation.Entry
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning citation: %w", err)
		}
		var e citation.Entry
		if err := json.Unmarshal([]byte(payload), &e); err != nil {
			return nil, fmt.Errorf("decoding citation: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading citations: %w", err)
	}

	return entries, nil
}

// Count returns the number of registered citations.
func (r *Registry) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM citations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting citations: %w", err)
	}
	return n, nil
}
