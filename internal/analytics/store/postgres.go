package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/shrtlnk/internal/analytics"
)

// Postgres persists analytics events and maintains per-code access
// aggregates.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new PostgreSQL-backed analytics store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// EnsureSchema provisions the analytics tables. Idempotent, run once at
// process start.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS link_events (
			event_id    TEXT PRIMARY KEY,
			event       TEXT NOT NULL,
			short_code  TEXT NOT NULL,
			long_url    TEXT NOT NULL,
			from_cache  BOOLEAN,
			occurred_at TIMESTAMPTZ NOT NULL,
			client_ip   TEXT,
			user_agent  TEXT,
			referrer    TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS link_access_counts (
			short_code TEXT PRIMARY KEY,
			total      BIGINT NOT NULL DEFAULT 0,
			cache_hits BIGINT NOT NULL DEFAULT 0
		)`,
	}

	for _, query := range queries {
		if _, err := p.pool.Exec(ctx, query); err != nil {
			return fmt.Errorf("ensure analytics schema: %w", err)
		}
	}

	return nil
}

// SaveLinkCreated records a created event. The event_id key makes
// redelivered messages harmless.
func (p *Postgres) SaveLinkCreated(ctx context.Context, event *analytics.LinkCreatedEvent) error {
	query := `
		INSERT INTO link_events (event_id, event, short_code, long_url, occurred_at, client_ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (event_id) DO NOTHING
	`

	_, err := p.pool.Exec(ctx, query,
		event.EventID,
		event.Event,
		event.ShortCode,
		event.LongURL,
		event.Timestamp,
		nullable(event.ClientIP),
		nullable(event.UserAgent),
	)

	return err
}

// SaveLinkAccessed records an accessed event and bumps the per-code
// aggregates in one round trip.
func (p *Postgres) SaveLinkAccessed(ctx context.Context, event *analytics.LinkAccessedEvent) error {
	batch := &pgx.Batch{}

	batch.Queue(`
		INSERT INTO link_events (event_id, event, short_code, long_url, from_cache, occurred_at, client_ip, user_agent, referrer)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (event_id) DO NOTHING
	`,
		event.EventID,
		event.Event,
		event.ShortCode,
		event.LongURL,
		event.Cache,
		event.Timestamp,
		nullable(event.ClientIP),
		nullable(event.UserAgent),
		nullable(event.Referrer),
	)

	cacheHit := 0
	if event.Cache {
		cacheHit = 1
	}

	batch.Queue(`
		INSERT INTO link_access_counts (short_code, total, cache_hits)
		VALUES ($1, 1, $2)
		ON CONFLICT (short_code) DO UPDATE
		SET total = link_access_counts.total + 1,
		    cache_hits = link_access_counts.cache_hits + $2
	`, event.ShortCode, cacheHit)

	return p.pool.SendBatch(ctx, batch).Close()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// Compile-time check.
var _ analytics.Store = (*Postgres)(nil)
