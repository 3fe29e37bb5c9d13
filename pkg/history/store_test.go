package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/japanalyze/japanalyze/pkg/pipeline"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := InitDB(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})
	return db
}

func TestCreateOrGetSentenceIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	id1, err := CreateOrGetSentence(ctx, db, "猫が好きです。")
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}
	id2, err := CreateOrGetSentence(ctx, db, "猫が好きです。")
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if id1 != id2 {
		t.Errorf("expected idempotent sentence id, got %d then %d", id1, id2)
	}
}

func TestRecordVocabularyHitAccumulatesCount(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	sentenceID, err := CreateOrGetSentence(ctx, db, "猫が猫を見た。")
	if err != nil {
		t.Fatalf("create sentence: %v", err)
	}
	if err := RecordVocabularyHit(ctx, db, sentenceID, "猫", "ねこ", "cat", 1); err != nil {
		t.Fatalf("first hit: %v", err)
	}
	if err := RecordVocabularyHit(ctx, db, sentenceID, "猫", "ねこ", "cat", 1); err != nil {
		t.Fatalf("second hit: %v", err)
	}

	store := NewStore(db)
	hits, err := store.VocabularyForSentence(ctx, sentenceID)
	if err != nil {
		t.Fatalf("fetch hits: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("expected 1 deduplicated hit, got %d", len(hits))
	}
	if hits[0].Count != 2 {
		t.Errorf("expected accumulated count 2, got %d", hits[0].Count)
	}
}

func TestRecordSentencePersistsVocabulary(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	tokens := []pipeline.Token{
		{Surface: "食べた", Base: "食べる", Reading: "たべた", Meaning: "to eat"},
		{Surface: "は", Base: "は", Reading: "は", Meaning: "topic marker"},
	}
	sentenceID, err := store.RecordSentence(ctx, "私は食べた。", tokens)
	if err != nil {
		t.Fatalf("record sentence: %v", err)
	}

	hits, err := store.VocabularyForSentence(ctx, sentenceID)
	if err != nil {
		t.Fatalf("fetch hits: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("expected 2 vocabulary hits, got %d", len(hits))
	}
}
