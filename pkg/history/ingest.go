package history

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"

	"github.com/japanalyze/japanalyze/pkg/pipeline"
	"github.com/japanalyze/japanalyze/pkg/segmenter"
)

// Replayer bulk-ingests many sentences (new or previously seen) into the history
// store, parallelizing the CPU-bound analysis (tokenize/group/dictionary
// lookup/hint generation) across a WorkerPool ahead of a single-writer
// BatchWriter that commits SQLite transactions in batches. This is the only
// place in the module that runs pipeline analysis concurrently across
// requests rather than once per request — grounded on the teacher's
// Ingester.Ingest bulk-processing shape.
type Replayer struct {
	DB       *sql.DB
	Pipeline *pipeline.Pipeline
	// BatchSize controls how many sentences' writes are grouped per SQLite
	// transaction.
	BatchSize int
	// Workers controls how many sentences are analyzed concurrently.
	Workers int
	// Logger receives informational progress messages; nil disables logging.
	Logger *log.Logger
}

// NewReplayer creates a Replayer with the teacher's default concurrency
// shape: 4 workers, batches of 50.
func NewReplayer(db *sql.DB, p *pipeline.Pipeline) *Replayer {
	return &Replayer{DB: db, Pipeline: p, BatchSize: 50, Workers: 4}
}

type replayResult struct {
	index    int
	text     string
	tokens   []pipeline.Token
	err      error
}

// Replay analyzes every sentence in texts concurrently and persists the
// results in batched transactions, returning the number of sentences
// successfully recorded.
func (r *Replayer) Replay(ctx context.Context, texts []string) (int, error) {
	if len(texts) == 0 {
		return 0, nil
	}

	wp := NewWorkerPool(r.Workers, r.Workers*2)
	resultCh := make(chan replayResult, r.Workers*2)

	bw := NewBatchWriter(r.DB, r.BatchSize, 0)
	var batchErr error
	var batchErrMu sync.Mutex
	bw.OnError = func(e error) {
		batchErrMu.Lock()
		if batchErr == nil {
			batchErr = e
		}
		batchErrMu.Unlock()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	wp.Start(ctx)

	var recorded int64
	doneCh := make(chan error, 1)

	go func() {
		defer close(doneCh)
		for i := 0; i < len(texts); i++ {
			select {
			case <-ctx.Done():
				doneCh <- ctx.Err()
				return
			case res := <-resultCh:
				if res.err != nil {
					doneCh <- res.err
					return
				}
				item := res
				err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
					sentenceID, err := CreateOrGetSentence(ctx, tx, item.text)
					if err != nil {
						return err
					}
					for _, t := range item.tokens {
						if err := RecordVocabularyHit(ctx, tx, sentenceID, t.Base, t.Reading, t.Meaning, 1); err != nil {
							return err
						}
					}
					return nil
				})
				if err != nil {
					doneCh <- err
					return
				}
				recorded++
				if r.Logger != nil && recorded%int64(r.BatchSize) == 0 {
					r.Logger.Printf("history replay: %d/%d sentences analyzed", recorded, len(texts))
				}
			}
		}
	}()

	for i, text := range texts {
		idx, t := i, text
		err := wp.Submit(func(ctx context.Context) error {
			tokens := r.Pipeline.AnalyzeVocabulary(t, segmenter.Short)
			select {
			case resultCh <- replayResult{index: idx, text: t, tokens: tokens}:
			case <-ctx.Done():
			}
			return nil
		})
		if err != nil {
			cancel()
			wp.Close()
			_ = bw.Close()
			return int(recorded), fmt.Errorf("history: submit replay job: %w", err)
		}
	}

	consumerErr := <-doneCh
	wp.Close()
	if err := bw.Close(); err != nil && consumerErr == nil {
		consumerErr = err
	}

	batchErrMu.Lock()
	if batchErr != nil && consumerErr == nil {
		consumerErr = batchErr
	}
	batchErrMu.Unlock()

	return int(recorded), consumerErr
}
