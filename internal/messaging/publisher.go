package messaging

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/shrtlnk/internal/metrics"
	"go.uber.org/zap"
)

// Publish is a function that publishes a typed event.
type Publish[T any] func(event *T) error

// NewPublishFunc creates a typed publish function for a specific topic.
func NewPublishFunc[T any](publisher message.Publisher, topic string) Publish[T] {
	return func(event *T) error {
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		msg := message.NewMessage(watermill.NewUUID(), payload)

		return publisher.Publish(topic, msg)
	}
}

// Detach wraps a publish function so callers never wait on or fail from
// the publish. The publish runs on its own goroutine; errors and panics
// are logged and counted, and nothing propagates to the request path.
func Detach[T any](publish Publish[T], topic string, logger *zap.Logger) Publish[T] {
	return func(event *T) error {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic in detached publish",
						zap.String("topic", topic),
						zap.Any("panic", r),
					)
				}
			}()

			if err := publish(event); err != nil {
				metrics.EventsPublished.WithLabelValues(topic, "error").Inc()
				logger.Error("failed to publish event",
					zap.String("topic", topic),
					zap.Error(err),
				)

				return
			}

			metrics.EventsPublished.WithLabelValues(topic, "ok").Inc()
		}()

		return nil
	}
}

// PublisherGroup owns the underlying publisher's lifecycle.
type PublisherGroup struct {
	publisher message.Publisher
}

// NewPublisherGroup creates a new publisher group.
func NewPublisherGroup(publisher message.Publisher) *PublisherGroup {
	return &PublisherGroup{publisher: publisher}
}

// Publisher returns the underlying message publisher for creating typed
// publish functions.
func (g *PublisherGroup) Publisher() message.Publisher {
	return g.publisher
}

// Shutdown closes the underlying publisher.
func (g *PublisherGroup) Shutdown() error {
	return g.publisher.Close()
}
