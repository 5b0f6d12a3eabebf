package cache

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS symbol_translations (
	hash        TEXT NOT NULL,
	src_lang    TEXT NOT NULL,
	dst_lang    TEXT NOT NULL,
	symbol      TEXT NOT NULL,
	translated  TEXT NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (hash, src_lang, dst_lang)
)`

// PostgresStore keeps symbol translations in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an open pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Connect opens and pings a pool for databaseURL.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping PostgreSQL: %w", err)
	}
	return pool, nil
}

// EnsureSchema creates the cache table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure cache schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, hash, src, dst string) (string, error) {
	var translated string
	err := s.pool.QueryRow(ctx,
		`SELECT translated FROM symbol_translations WHERE hash = $1 AND src_lang = $2 AND dst_lang = $3`,
		hash, src, dst,
	).Scan(&translated)
	if err != nil {
		return "", err
	}
	return translated, nil
}

func (s *PostgresStore) Upsert(ctx context.Context, hash, src, dst, symbol, translated string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO symbol_translations (hash, src_lang, dst_lang, symbol, translated)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (hash, src_lang, dst_lang)
		 DO UPDATE SET translated = EXCLUDED.translated, updated_at = now()`,
		hash, src, dst, symbol, translated,
	)
	return err
}

func (s *PostgresStore) List(ctx context.Context, src, dst string) (map[string]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT hash, translated FROM symbol_translations WHERE src_lang = $1 AND dst_lang = $2`,
		src, dst,
	)
	if err != nil {
		return nil, err
	}

	type row struct {
		Hash       string
		Translated string
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByPos[row])
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(collected))
	for _, r := range collected {
		out[r.Hash] = r.Translated
	}
	return out, nil
}
