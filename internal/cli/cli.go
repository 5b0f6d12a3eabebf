package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cbf-translator/internal/cache"
	"cbf-translator/internal/config"
	"cbf-translator/internal/pipeline"
	"cbf-translator/internal/translation"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Translation failed")
		os.Exit(1)
	}
}

type runOptions struct {
	dryRun     bool
	verbose    bool
	batchSize  int
	sourceLang string
	output     string
}

func newRootCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "cbf-translator <input-file> <dest-lang>",
		Short: "Translate the string table of a CBF dump",
		Long: `Extracts translatable strings from a CBF string table dump, translates their
distinct symbols in batches and writes <input-file>_translated with every
line index preserved.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Plan batches without calling the translation service or writing output")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().IntVar(&opts.batchSize, "batch-size", 0, "Symbols per translation call (default from BATCH_SIZE or 100)")
	cmd.Flags().StringVar(&opts.sourceLang, "source-lang", "", "Source language (default from SOURCE_LANG or de)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output path (default <input-file>_translated)")

	return cmd
}

// runTranslate handles the root command.
func runTranslate(cmd *cobra.Command, inputPath, destLang string, opts runOptions) error {
	if opts.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, cancel := setupContext(cmd.Context())
	defer cancel()

	cfg := config.Load()
	if cmd.Flags().Changed("batch-size") {
		cfg.BatchSize = opts.batchSize
	}
	if opts.sourceLang != "" {
		cfg.SourceLanguage = opts.sourceLang
	}

	src, err := language.Parse(cfg.SourceLanguage)
	if err != nil {
		return fmt.Errorf("invalid source language %q: %w", cfg.SourceLanguage, err)
	}
	dst, err := language.Parse(destLang)
	if err != nil {
		return fmt.Errorf("invalid destination language %q: %w", destLang, err)
	}

	var symbolCache translation.Cache
	if cfg.DatabaseURL != "" && !opts.dryRun {
		c, closeCache, err := initCache(ctx, cfg, src, dst)
		if err != nil {
			return err
		}
		defer closeCache()
		symbolCache = c
	}

	log.Info().
		Str("input", inputPath).
		Str("src", src.String()).
		Str("dst", dst.String()).
		Int("batch_size", cfg.BatchSize).
		Msg("Starting translation")

	client := translation.NewGoogleClient(cfg.TranslateURL, cfg.HTTPTimeout)
	bt := translation.NewBatchTranslator(client, symbolCache, src, dst, cfg.BatchSize)

	_, err = pipeline.Run(ctx, pipeline.Options{
		InputPath:  inputPath,
		OutputPath: opts.output,
		DryRun:     opts.dryRun,
	}, bt)
	return err
}

// initCache connects the PostgreSQL symbol cache and preloads it.
func initCache(ctx context.Context, cfg *config.Config, src, dst language.Tag) (*cache.SymbolCache, func(), error) {
	pool, err := cache.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Msg("Connected to PostgreSQL")

	store := cache.NewPostgresStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	c := cache.NewSymbolCache(store, src.String(), dst.String())
	if err := c.Preload(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to preload cache")
	}
	return c, pool.Close, nil
}

// setupContext creates a cancellable context with signal handling.
func setupContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			log.Warn().Msg("Received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
