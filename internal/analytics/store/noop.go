package store

import (
	"context"

	"github.com/serroba/shrtlnk/internal/analytics"
	"go.uber.org/zap"
)

// Noop is an analytics.Store that only logs events, for running the
// consumer without a database.
type Noop struct {
	logger *zap.Logger
}

// NewNoop creates a new log-only analytics store.
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) SaveLinkCreated(_ context.Context, event *analytics.LinkCreatedEvent) error {
	n.logger.Info("link created event received",
		zap.String("shortCode", event.ShortCode),
		zap.String("longUrl", event.LongURL),
		zap.Time("timestamp", event.Timestamp),
	)

	return nil
}

func (n *Noop) SaveLinkAccessed(_ context.Context, event *analytics.LinkAccessedEvent) error {
	n.logger.Info("link accessed event received",
		zap.String("shortCode", event.ShortCode),
		zap.Bool("cache", event.Cache),
		zap.Time("timestamp", event.Timestamp),
		zap.String("referrer", event.Referrer),
	)

	return nil
}
