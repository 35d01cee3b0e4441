package shortener_test

import (
	"context"
	"errors"
	"sync"

	"github.com/serroba/shrtlnk/internal/shortener"
)

var errMock = errors.New("mock error")

const testURL = "https://example.com/very/long/path"

// mockRepo is a configurable test double for shortener.Repository.
type mockRepo struct {
	saveErrs  []error // consumed one per Save call, then nil
	getErr    error
	saved     []*shortener.Link
	saveCalls int
}

func (m *mockRepo) Save(_ context.Context, link *shortener.Link) error {
	m.saveCalls++

	if len(m.saveErrs) > 0 {
		err := m.saveErrs[0]
		m.saveErrs = m.saveErrs[1:]

		if err != nil {
			return err
		}
	}

	m.saved = append(m.saved, link)

	return nil
}

func (m *mockRepo) GetByCode(_ context.Context, code shortener.Code) (*shortener.Link, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}

	for _, link := range m.saved {
		if link.Code == code {
			return link, nil
		}
	}

	return nil, shortener.ErrNotFound
}

// mapCache is a working in-memory shortener.Cache.
type mapCache struct {
	mu      sync.Mutex
	entries map[shortener.Code]string
	stores  int
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

	c.stores++
	c.entries[code] = longURL
}

// downCache models an unreachable cache: every lookup misses and every
// store is dropped, mirroring the fail-open adapter contract.
type downCache struct{}

func (downCache) Lookup(_ context.Context, _ shortener.Code) (string, bool) { return "", false }

func (downCache) Store(_ context.Context, _ shortener.Code, _ string) {}
