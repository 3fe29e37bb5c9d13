package history

import (
	"context"
	"testing"

	"github.com/japanalyze/japanalyze/pkg/dictionary"
	"github.com/japanalyze/japanalyze/pkg/pipeline"
	"github.com/japanalyze/japanalyze/pkg/segmenter"
)

func TestReplayRecordsEverySentence(t *testing.T) {
	seg, err := segmenter.New()
	if err != nil {
		t.Fatalf("new segmenter: %v", err)
	}
	idx := dictionary.NewIndex(nil, nil, "test")
	p := pipeline.New(seg, idx)

	db := openTestDB(t)
	r := NewReplayer(db, p)
	r.Workers = 2
	r.BatchSize = 2

	texts := []string{"猫が好きです。", "犬も好きです。", "今日は晴れです。"}
	count, err := r.Replay(context.Background(), texts)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if count != len(texts) {
		t.Fatalf("expected %d sentences recorded, got %d", len(texts), count)
	}

	var total int
	if err := db.QueryRow("SELECT COUNT(*) FROM sentences").Scan(&total); err != nil {
		t.Fatalf("count sentences: %v", err)
	}
	if total != len(texts) {
		t.Errorf("expected %d rows in sentences table, got %d", len(texts), total)
	}
}
