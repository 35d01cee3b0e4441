package handlers_test

import (
	"context"
	"errors"
	"sync"

	"github.com/serroba/shrtlnk/internal/messaging"
	"github.com/serroba/shrtlnk/internal/shortener"
)

var errMock = errors.New("mock error")

const testURL = "https://example.com/very/long/path"

// capturePublish records published events so tests can assert emission.
func capturePublish[T any](events *[]*T) messaging.Publish[T] {
	return func(event *T) error {
		*events = append(*events, event)

		return nil
	}
}

// errorPublish returns a publish function that always fails.
func errorPublish[T any](err error) messaging.Publish[T] {
	return func(_ *T) error { return err }
}

// failingRepo is a shortener.Repository that errors on every call.
type failingRepo struct {
	err error
}

func (f *failingRepo) Save(_ context.Context, _ *shortener.Link) error {
	return f.err
}

func (f *failingRepo) GetByCode(_ context.Context, _ shortener.Code) (*shortener.Link, error) {
	return nil, f.err
}

// mapCache is a working in-memory shortener.Cache.
type mapCache struct {
	mu      sync.Mutex
	entries map[shortener.Code]string
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[shortener.Code]string)}
}

func (c *mapCache) Lookup(_ context.Context, code shortener.Code) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	longURL, ok := c.entries[code]

	return longURL, ok
}

func (c *mapCache) Store(_ context.Context, code shortener.Code, longURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[code] = longURL
}
