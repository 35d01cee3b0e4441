package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/shrtlnk/internal/shortener"
)

// PostgresStore is a PostgreSQL implementation of shortener.Repository.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed link store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema provisions the links table. Idempotent, run once at
// process start.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS links (
			short_code TEXT PRIMARY KEY,
			long_url   TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`

	if _, err := p.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure links table: %w", err)
	}

	return nil
}

// Save inserts a new link. An existing short_code is reported as
// shortener.ErrCodeTaken so the caller can regenerate; it is never
// overwritten.
func (p *PostgresStore) Save(ctx context.Context, link *shortener.Link) error {
	query := `
		INSERT INTO links (short_code, long_url, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (short_code) DO NOTHING
	`

	tag, err := p.pool.Exec(ctx, query,
		string(link.Code),
		link.LongURL,
		link.CreatedAt,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return shortener.ErrCodeTaken
	}

	return nil
}

func (p *PostgresStore) GetByCode(ctx context.Context, code shortener.Code) (*shortener.Link, error) {
	query := `
		SELECT short_code, long_url, created_at
		FROM links
		WHERE short_code = $1
	`

	var link shortener.Link

	err := p.pool.QueryRow(ctx, query, string(code)).Scan(
		&link.Code,
		&link.LongURL,
		&link.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return &link, nil
}

// Compile-time check.
var _ shortener.Repository = (*PostgresStore)(nil)
