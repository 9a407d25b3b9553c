package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is a Store backed by a single Postgres table, shared by all
// instances of the service.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an existing connection pool and ensures the cache
// table exists.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	const schema = `
		CREATE TABLE IF NOT EXISTS cache_entries (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL
		)`
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("cache: ensure schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Get implements Store. Expiry is evaluated by the database clock so that
// all instances agree on the window.
func (p *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM cache_entries WHERE key = $1 AND expires_at > now()`

	var value string
	err := p.pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache: get %q: %w", key, err)
	}
	return value, true, nil
}

// Put implements Store, upserting the entry and purging any expired rows in
// the same round trip.
func (p *PostgresStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	const upsert = `
		INSERT INTO cache_entries (key, value, expires_at)
		VALUES ($1, $2, now() + $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`

	if _, err := p.pool.Exec(ctx, upsert, key, value, ttl); err != nil {
		return fmt.Errorf("cache: put %q: %w", key, err)
	}

	// Expired entries are otherwise invisible; clear them out so the table
	// does not grow across TTL cycles.
	if _, err := p.pool.Exec(ctx, `DELETE FROM cache_entries WHERE expires_at <= now()`); err != nil {
		return fmt.Errorf("cache: purge expired: %w", err)
	}
	return nil
}
