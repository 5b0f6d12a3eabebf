package translation

import (
	"context"
	"fmt"
	"strings"

	"cbf-translator/internal/symbols"
	"cbf-translator/internal/textutil"
	"cbf-translator/internal/worker"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// DefaultBatchSize is the number of symbols sent per service call.
const DefaultBatchSize = 100

// BatchTranslator turns a list of symbols into a symbol lookup, one service
// call per batch.
type BatchTranslator struct {
	client    Translator
	cache     Cache
	src       language.Tag
	dst       language.Tag
	batchSize int
}

// NewBatchTranslator creates a batch translator. cache may be nil.
func NewBatchTranslator(client Translator, cache Cache, src, dst language.Tag, batchSize int) *BatchTranslator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &BatchTranslator{
		client:    client,
		cache:     cache,
		src:       src,
		dst:       dst,
		batchSize: batchSize,
	}
}

// Plan returns the batches Translate would send for syms, after cache hits
// are removed. The returned lookup holds the cache hits.
func (bt *BatchTranslator) Plan(ctx context.Context, syms []string) ([][]string, symbols.Lookup) {
	lookup := make(symbols.Lookup, len(syms))
	pending := make([]string, 0, len(syms))

	for _, s := range syms {
		if bt.cache != nil {
			if tr, ok := bt.cache.Get(ctx, s); ok {
				lookup[s] = tr
				continue
			}
		}
		pending = append(pending, s)
	}

	return worker.Batch(pending, bt.batchSize), lookup
}

// Translate translates every symbol in syms and returns the lookup.
// A reply whose line count differs from the batch fails with a *DesyncError.
func (bt *BatchTranslator) Translate(ctx context.Context, syms []string) (symbols.Lookup, error) {
	batches, lookup := bt.Plan(ctx, syms)
	return bt.TranslateBatches(ctx, batches, lookup)
}

// TranslateBatches sends batches returned by Plan and adds the results to
// lookup, which is returned.
func (bt *BatchTranslator) TranslateBatches(ctx context.Context, batches [][]string, lookup symbols.Lookup) (symbols.Lookup, error) {
	if lookup == nil {
		lookup = make(symbols.Lookup)
	}
	if hits := len(lookup); hits > 0 {
		log.Info().Int("cache_hits", hits).Msg("Symbols served from cache")
	}

	for i, batch := range batches {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		log.Info().
			Int("batch", i+1).
			Int("total_batches", len(batches)).
			Int("size", len(batch)).
			Msg("Translating batch")

		resp, err := bt.client.Translate(ctx, bt.src, bt.dst, strings.Join(batch, "\n"))
		if err != nil {
			return nil, fmt.Errorf("translate batch %d: %w", i+1, err)
		}

		lines := strings.Split(strings.TrimRight(resp, "\r\n"), "\n")
		if len(lines) != len(batch) {
			return nil, &DesyncError{Batch: i + 1, Sent: len(batch), Received: len(lines)}
		}

		for j, sym := range batch {
			tr := strings.TrimSuffix(lines[j], "\r")
			lookup[sym] = tr

			if bt.cache != nil {
				if err := bt.cache.Set(ctx, sym, tr); err != nil {
					log.Warn().Err(err).Str("symbol", textutil.Truncate(sym, 30)).Msg("Failed to cache translation")
				}
			}
		}
	}

	return lookup, nil
}
