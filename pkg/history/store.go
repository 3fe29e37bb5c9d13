package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/japanalyze/japanalyze/pkg/pipeline"
)

// DBExecutor is satisfied by both *sql.DB and *sql.Tx, so store functions
// can run standalone or inside a BatchWriter transaction.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// CreateOrGetSentence returns the id of an existing sentence row matching
// text, or inserts a new one and returns its id.
func CreateOrGetSentence(ctx context.Context, db DBExecutor, text string) (int64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("history: sentence text must be non-empty")
	}

	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO sentences (text) VALUES (?)
		ON CONFLICT(text) DO UPDATE SET text = excluded.text
		RETURNING id`, trimmed).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("history: upsert sentence: %w", err)
	}
	return id, nil
}

// RecordVocabularyHit upserts one vocabulary occurrence for a sentence,
// accumulating count on repeat calls for the same (sentence, base form).
func RecordVocabularyHit(ctx context.Context, db DBExecutor, sentenceID int64, baseForm, reading, meaning string, count int) error {
	if sentenceID <= 0 {
		return fmt.Errorf("history: sentenceID must be positive")
	}
	if count < 1 {
		count = 1
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO vocabulary_hits (sentence_id, base_form, reading, meaning, count)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(sentence_id, base_form) DO UPDATE SET
			count = vocabulary_hits.count + excluded.count,
			reading = COALESCE(NULLIF(excluded.reading, ''), vocabulary_hits.reading),
			meaning = COALESCE(NULLIF(excluded.meaning, ''), vocabulary_hits.meaning)`,
		sentenceID, baseForm, reading, meaning, count)
	if err != nil {
		return fmt.Errorf("history: upsert vocabulary hit for %q: %w", baseForm, err)
	}
	return nil
}

// Store is the synchronous, single-request recording path: it records one
// sentence's analysis directly on the caller's goroutine, with no worker
// pool or batching involved, per the concurrency model (those exist only
// for bulk replay — see Replayer).
type Store struct {
	db *sql.DB
}

// NewStore wraps an already-migrated (see InitDB) *sql.DB.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// RecordSentence persists text and the vocabulary tokens recovered from
// analyzing it (as produced by pipeline.Pipeline.AnalyzeVocabulary), all
// inside one transaction.
func (s *Store) RecordSentence(ctx context.Context, text string, tokens []pipeline.Token) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("history: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sentenceID, err := CreateOrGetSentence(ctx, tx, text)
	if err != nil {
		return 0, err
	}
	for _, t := range tokens {
		if err := RecordVocabularyHit(ctx, tx, sentenceID, t.Base, t.Reading, t.Meaning, 1); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("history: commit: %w", err)
	}
	return sentenceID, nil
}

// VocabularyForSentence returns every recorded vocabulary hit for a
// sentence id.
func (s *Store) VocabularyForSentence(ctx context.Context, sentenceID int64) ([]VocabularyHit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sentence_id, base_form, IFNULL(reading, ''), IFNULL(meaning, ''), count
		FROM vocabulary_hits WHERE sentence_id = ?`, sentenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VocabularyHit
	for rows.Next() {
		var h VocabularyHit
		if err := rows.Scan(&h.ID, &h.SentenceID, &h.BaseForm, &h.Reading, &h.Meaning, &h.Count); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
