package messaging

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaPublisher adapts a kafka-go writer to watermill's
// message.Publisher, letting the event stream run on Kafka instead of
// Redis Streams.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher writing to the given brokers.
// The topic is taken per message, so one writer serves all topics.
func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaPublisher) Publish(topic string, msgs ...*message.Message) error {
	kafkaMsgs := make([]kafka.Message, 0, len(msgs))
	for _, msg := range msgs {
		kafkaMsgs = append(kafkaMsgs, kafka.Message{
			Topic: topic,
			Key:   []byte(msg.UUID),
			Value: msg.Payload,
		})
	}

	return p.writer.WriteMessages(context.Background(), kafkaMsgs...)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// KafkaSubscriber adapts kafka-go readers to watermill's
// message.Subscriber. Each Subscribe call opens a reader in the shared
// consumer group; offsets are committed on Ack, a Nack leaves them
// uncommitted for redelivery after a rebalance.
type KafkaSubscriber struct {
	brokers []string
	groupID string
	logger  *zap.Logger

	mu      sync.Mutex
	readers []*kafka.Reader
	wg      sync.WaitGroup
}

// NewKafkaSubscriber creates a subscriber reading as the given consumer
// group.
func NewKafkaSubscriber(brokers []string, groupID string, logger *zap.Logger) *KafkaSubscriber {
	return &KafkaSubscriber{
		brokers: brokers,
		groupID: groupID,
		logger:  logger,
	}
}

func (s *KafkaSubscriber) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: s.brokers,
		GroupID: s.groupID,
		Topic:   topic,
	})

	s.mu.Lock()
	s.readers = append(s.readers, reader)
	s.mu.Unlock()

	out := make(chan *message.Message)

	s.wg.Add(1)
	go s.consume(ctx, reader, out)

	return out, nil
}

func (s *KafkaSubscriber) consume(ctx context.Context, reader *kafka.Reader, out chan<- *message.Message) {
	defer s.wg.Done()
	defer close(out)

	for {
		kafkaMsg, err := reader.FetchMessage(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
				s.logger.Error("kafka fetch failed", zap.Error(err))
			}

			return
		}

		msg := message.NewMessage(watermill.NewUUID(), kafkaMsg.Value)
		msg.SetContext(ctx)

		select {
		case out <- msg:
		case <-ctx.Done():
			return
		}

		select {
		case <-msg.Acked():
			if err := reader.CommitMessages(ctx, kafkaMsg); err != nil {
				s.logger.Error("kafka commit failed", zap.Error(err))
			}
		case <-msg.Nacked():
		case <-ctx.Done():
			return
		}
	}
}

func (s *KafkaSubscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error

	for _, reader := range s.readers {
		if err := reader.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	s.wg.Wait()

	return firstErr
}

// Compile-time checks.
var (
	_ message.Publisher  = (*KafkaPublisher)(nil)
	_ message.Subscriber = (*KafkaSubscriber)(nil)
)
