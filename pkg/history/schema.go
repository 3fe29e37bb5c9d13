// Package history persists analyzed sentences and the vocabulary surfaced
// from them to SQLite, so a learner can review what they've already studied.
// Adapted from the teacher's pkg/db+pkg/ingest (a reading-tracker's
// word/source/occurrence schema) but narrowed to this domain's two tables:
// sentences and the vocabulary hits recovered from analyzing them.
package history

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// migrationsSQL is the schema bootstrap for a fresh database. The teacher's
// own migrationsSQL (the file defining it was missing from the retrieval
// pack) is not recoverable, so this is authored fresh for the narrowed
// sentences/vocabulary_hits schema described in SPEC_FULL.md.
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS sentences (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	text        TEXT NOT NULL UNIQUE,
	analyzed_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS vocabulary_hits (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	sentence_id INTEGER NOT NULL REFERENCES sentences(id) ON DELETE CASCADE,
	base_form   TEXT NOT NULL,
	meaning     TEXT,
	count       INTEGER NOT NULL DEFAULT 1,
	UNIQUE(sentence_id, base_form)
);

CREATE INDEX IF NOT EXISTS idx_vocabulary_hits_base_form ON vocabulary_hits(base_form);
`

// InitDB runs the schema bootstrap against db and applies any additive
// migrations needed for a database created by an older schema version,
// keeping the teacher's ensureColumnExists idiom alive for that purpose.
func InitDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return err
	}
	if _, err := db.Exec(migrationsSQL); err != nil {
		return err
	}

	// vocabulary_hits.reading was added after the first schema revision;
	// ensureColumnExists keeps a database created before that revision usable
	// without a destructive migration.
	if err := ensureColumnExists(db, "vocabulary_hits", "reading", "TEXT"); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	return nil
}

func ensureColumnExists(db *sql.DB, table, column, definition string) error {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return fmt.Errorf("failed to check table info: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dfltVal interface{}
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltVal, &pk); err != nil {
			return fmt.Errorf("failed to scan table info: %w", err)
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	query := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s;", table, column, definition)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to add column %s: %w", column, err)
	}
	return nil
}
