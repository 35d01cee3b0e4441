package analytics

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/shrtlnk/internal/messaging"
	"go.uber.org/zap"
)

// NewLinkCreatedConsumer returns a consumer that persists created events.
func NewLinkCreatedConsumer(
	subscriber message.Subscriber, store Store, logger *zap.Logger,
) *messaging.Consumer[LinkCreatedEvent] {
	return messaging.NewConsumer(subscriber, TopicLinkCreated,
		func(ctx context.Context, event *LinkCreatedEvent) error {
			return store.SaveLinkCreated(ctx, event)
		}, logger)
}

// NewLinkAccessedConsumer returns a consumer that persists accessed events.
func NewLinkAccessedConsumer(
	subscriber message.Subscriber, store Store, logger *zap.Logger,
) *messaging.Consumer[LinkAccessedEvent] {
	return messaging.NewConsumer(subscriber, TopicLinkAccessed,
		func(ctx context.Context, event *LinkAccessedEvent) error {
			return store.SaveLinkAccessed(ctx, event)
		}, logger)
}
