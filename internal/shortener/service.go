package shortener

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrEmptyURL indicates a create request with no long URL.
var ErrEmptyURL = errors.New("long url must not be empty")

// createAttempts bounds code regeneration when a generated code collides
// with an existing link.
const createAttempts = 3

// Resolution is the outcome of a successful resolve: the redirect target
// and whether it was served from the cache.
type Resolution struct {
	LongURL   string
	FromCache bool
}

// Service orchestrates the creation and resolution pipelines.
type Service struct {
	repo     Repository
	cache    Cache
	generate Generator
	logger   *zap.Logger
}

// NewService creates the link service.
func NewService(repo Repository, cache Cache, generate Generator, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		generate: generate,
		logger:   logger,
	}
}

// Create stores a new link under a freshly generated code. The cache is
// left untouched; it is populated lazily on first resolve.
func (s *Service) Create(ctx context.Context, longURL string) (*Link, error) {
	if longURL == "" {
		return nil, ErrEmptyURL
	}

	for attempt := 0; attempt < createAttempts; attempt++ {
		link := &Link{
			Code:      Code(s.generate()),
			LongURL:   longURL,
			CreatedAt: time.Now(),
		}

		err := s.repo.Save(ctx, link)
		if err == nil {
			return link, nil
		}

		if !errors.Is(err, ErrCodeTaken) {
			return nil, fmt.Errorf("save link: %w", err)
		}

		s.logger.Warn("generated code already taken",
			zap.String("code", string(link.Code)),
			zap.Int("attempt", attempt+1),
		)
	}

	return nil, fmt.Errorf("no free short code after %d attempts", createAttempts)
}

// Resolve returns the redirect target for a code. The cache is consulted
// first; on a miss the repository is read and the cache backfilled with
// the result.
func (s *Service) Resolve(ctx context.Context, code Code) (*Resolution, error) {
	if longURL, ok := s.cache.Lookup(ctx, code); ok {
		return &Resolution{LongURL: longURL, FromCache: true}, nil
	}

	link, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	s.cache.Store(ctx, code, link.LongURL)

	return &Resolution{LongURL: link.LongURL, FromCache: false}, nil
}
