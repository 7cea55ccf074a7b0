// Package enricher adds LLM-generated Korean definitions to the final
// vocabulary and Korean verse texts to the selected sentences. All
// API-facing concerns (batching, retries, failures) live here; the
// extraction pipeline never talks to the network.
package enricher

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/zzoony/logos-app/internal/domain"
)

// Result is the outcome of enriching one word set.
type Result struct {
	Defined map[string]Definition
	Failed  []string
}

// Enricher runs batched definition requests over a bounded worker pool.
type Enricher struct {
	log        *slog.Logger
	client     DefinitionClient
	batchSize  int
	maxWorkers int

	// OnBatch, when set, is called after every finished batch.
	OnBatch func(done, total int)
}

// New creates an Enricher.
func New(log *slog.Logger, client DefinitionClient, cfg *Config) *Enricher {
	return &Enricher{
		log:        log,
		client:     client,
		batchSize:  cfg.BatchSize,
		maxWorkers: cfg.MaxWorkers,
	}
}

// EnrichWords defines every word, in batches. Words from failed batches
// are re-batched for exactly one retry round; words still missing after
// that are reported in Result.Failed. Context cancellation aborts the
// remaining batches.
func (e *Enricher) EnrichWords(ctx context.Context, words []string) Result {
	defined := make(map[string]Definition, len(words))

	failed := e.runRound(ctx, words, defined)
	if len(failed) > 0 && ctx.Err() == nil {
		e.log.Info("retrying failed words", slog.Int("count", len(failed)))
		failed = e.runRound(ctx, failed, defined)
	}

	if len(failed) > 0 {
		e.log.Warn("words failed after retry", slog.Int("count", len(failed)))
	}
	return Result{Defined: defined, Failed: failed}
}

// runRound sends one round of batches and returns the words that did not
// come back defined.
func (e *Enricher) runRound(ctx context.Context, words []string, defined map[string]Definition) []string {
	batches := splitBatches(words, e.batchSize)

	var mu sync.Mutex
	done := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxWorkers)
	for _, batch := range batches {
		batch := batch
		g.Go(func() error {
			defs, err := e.client.Define(ctx, batch)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				e.log.Warn("batch failed",
					slog.Int("words", len(batch)),
					slog.String("error", err.Error()),
				)
			} else {
				for _, d := range defs {
					defined[d.Word] = d
				}
			}
			done++
			if e.OnBatch != nil {
				e.OnBatch(done, len(batches))
			}
			// Batch failures are collected, not fatal: only context
			// cancellation stops the round.
			return ctx.Err()
		})
	}
	_ = g.Wait()

	var missing []string
	for _, w := range words {
		if _, ok := defined[w]; !ok {
			missing = append(missing, w)
		}
	}
	return missing
}

func splitBatches(words []string, size int) [][]string {
	if size < 1 {
		size = 1
	}
	var batches [][]string
	for i := 0; i < len(words); i += size {
		batches = append(batches, words[i:min(i+size, len(words))])
	}
	return batches
}

// Merge joins definitions onto the vocabulary. Every record gains a
// sequential id; words without a definition keep explicit empty strings
// so consumers can distinguish "not defined" from "not yet processed".
func Merge(words []domain.SentencedWord, defined map[string]Definition) []domain.EnrichedWord {
	out := make([]domain.EnrichedWord, len(words))
	for i, w := range words {
		d := defined[w.Word]
		out[i] = domain.EnrichedWord{
			ID:                  i,
			Word:                w.Word,
			Count:               w.Count,
			Rank:                w.Rank,
			SentenceIDs:         w.SentenceIDs,
			IPAPronunciation:    d.IPAPronunciation,
			KoreanPronunciation: d.KoreanPronunciation,
			DefinitionKorean:    d.DefinitionKorean,
		}
	}
	return out
}
