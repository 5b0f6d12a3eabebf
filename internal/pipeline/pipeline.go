package pipeline

import (
	"context"
	"fmt"

	"cbf-translator/internal/parser"
	"cbf-translator/internal/symbols"

	"github.com/rs/zerolog/log"
)

// SymbolTranslator turns distinct symbols into a lookup.
type SymbolTranslator interface {
	Plan(ctx context.Context, syms []string) ([][]string, symbols.Lookup)
	TranslateBatches(ctx context.Context, batches [][]string, lookup symbols.Lookup) (symbols.Lookup, error)
}

// Options configures a pipeline run.
type Options struct {
	InputPath string
	// OutputPath defaults to the input path with the _translated suffix.
	OutputPath string
	// DryRun stops after planning: no service calls, no output file.
	DryRun bool
}

// Stats summarises a run.
type Stats struct {
	Records    int
	Filtered   int
	Strings    int
	Symbols    int
	Candidates int
	Batches    int
	Translated int
	OutputPath string
}

// Run reads the dump at opts.InputPath, translates it and writes the result.
func Run(ctx context.Context, opts Options, tr SymbolTranslator) (*Stats, error) {
	records, err := parser.ReadFile(opts.InputPath)
	if err != nil {
		return nil, err
	}

	filtered := Filter(records)
	index := BuildIndex(filtered)
	syms := symbols.Collect(index.Strings())
	candidates := symbols.Candidates(syms)
	batches, cached := tr.Plan(ctx, candidates)

	stats := &Stats{
		Records:    len(records),
		Filtered:   len(filtered),
		Strings:    index.Len(),
		Symbols:    len(syms),
		Candidates: len(candidates),
		Batches:    len(batches),
	}

	log.Info().
		Int("entries", stats.Records).
		Int("strings", stats.Strings).
		Int("symbols", stats.Candidates).
		Msg("String grouping complete")
	log.Info().Int("api_calls", stats.Batches).Msg("Translation plan")

	if opts.DryRun {
		log.Info().Msg("Dry run, skipping translation")
		return stats, nil
	}

	lookup, err := tr.TranslateBatches(ctx, batches, cached)
	if err != nil {
		return nil, fmt.Errorf("translate symbols: %w", err)
	}

	log.Info().Msg("Stitching strings back together")
	translated := Reassemble(index, lookup)
	lines := Complete(records, index, translated)

	for _, s := range index.Strings() {
		stats.Translated += len(index.Indices(s))
	}

	out := opts.OutputPath
	if out == "" {
		out = parser.OutputPath(opts.InputPath)
	}
	if err := parser.WriteFile(out, lines); err != nil {
		return nil, err
	}
	stats.OutputPath = out

	log.Info().
		Int("lines", len(lines)).
		Int("translated", stats.Translated).
		Str("output", out).
		Msg("Translation complete")

	return stats, nil
}
