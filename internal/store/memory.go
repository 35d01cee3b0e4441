package store

import (
	"context"
	"sync"

	"github.com/serroba/shrtlnk/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Repository.
// GetByCode calls are counted so tests can assert that the cache-aside
// read path skips the store.
type MemoryStore struct {
	mu       sync.RWMutex
	links    map[shortener.Code]shortener.Link
	getCalls int
}

// NewMemoryStore creates a new in-memory link store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		links: make(map[shortener.Code]shortener.Link),
	}
}

func (m *MemoryStore) Save(_ context.Context, link *shortener.Link) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.links[link.Code]; exists {
		return shortener.ErrCodeTaken
	}

	m.links[link.Code] = *link

	return nil
}

func (m *MemoryStore) GetByCode(_ context.Context, code shortener.Code) (*shortener.Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.getCalls++

	link, ok := m.links[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	return &link, nil
}

// GetCalls returns how many times GetByCode has been called.
func (m *MemoryStore) GetCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.getCalls
}

// Compile-time check.
var _ shortener.Repository = (*MemoryStore)(nil)
