package shortener

import "context"

// Cache is the volatile code->URL store consulted before the Repository.
//
// Lookup reports a miss for both absent keys and cache-layer failures, so
// the resolve path fails open without ever seeing a cache error. Store is
// best-effort: a failed write only costs latency on future lookups and is
// handled (logged) inside the adapter.
type Cache interface {
	Lookup(ctx context.Context, code Code) (longURL string, ok bool)
	Store(ctx context.Context, code Code, longURL string)
}
