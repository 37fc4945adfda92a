package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cineplex/internal/shared/config"
	"cineplex/pkg/logger"

	"github.com/IBM/sarama"
)

// Publisher emits booking lifecycle events
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}

// KafkaConfig contains configuration for the Kafka publisher
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	ClientID     string
	RetryMax     int
	Timeout      time.Duration
	RequiredAcks sarama.RequiredAcks
	Compression  sarama.CompressionCodec
}

// DefaultKafkaConfig returns publisher defaults for the configured brokers
func DefaultKafkaConfig(cfg config.KafkaConfig) *KafkaConfig {
	return &KafkaConfig{
		Brokers:      cfg.Brokers,
		Topic:        cfg.Topic,
		ClientID:     cfg.ClientID,
		RetryMax:     3,
		Timeout:      10 * time.Second,
		RequiredAcks: sarama.WaitForAll,
		Compression:  sarama.CompressionSnappy,
	}
}

// SaramaConfig builds the producer configuration
func (c *KafkaConfig) SaramaConfig() *sarama.Config {
	sc := sarama.NewConfig()
	sc.ClientID = c.ClientID
	sc.Producer.Return.Successes = true
	sc.Producer.Return.Errors = true
	sc.Producer.RequiredAcks = c.RequiredAcks
	sc.Producer.Compression = c.Compression
	sc.Producer.Retry.Max = c.RetryMax
	sc.Producer.Timeout = c.Timeout
	// same member, same partition
	sc.Producer.Partitioner = sarama.NewHashPartitioner
	return sc
}

// KafkaPublisher publishes events through a sarama SyncProducer
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

// NewKafkaPublisher dials the brokers
func NewKafkaPublisher(cfg *KafkaConfig) (*KafkaPublisher, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers, cfg.SaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return NewKafkaPublisherWithProducer(producer, cfg.Topic), nil
}

// NewKafkaPublisherWithProducer wraps an existing producer
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic, log: logger.GetDefault()}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event *Event) error {
	payload, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.PartitionKey()),
		Value:     sarama.ByteEncoder(payload),
		Headers:   headers(event),
		Timestamp: event.CreatedAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	p.log.Debug("event published",
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
		"type", event.Type,
		"user_id", event.UserID,
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	if p.producer == nil {
		return nil
	}
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	return nil
}

func headers(event *Event) []sarama.RecordHeader {
	h := []sarama.RecordHeader{
		{Key: []byte("event_id"), Value: []byte(event.ID)},
		{Key: []byte("event_type"), Value: []byte(event.Type)},
		{Key: []byte("user_id"), Value: []byte(event.UserID)},
		{Key: []byte("producer"), Value: []byte("cineplex")},
		{Key: []byte("created_at"), Value: []byte(event.CreatedAt.Format(time.RFC3339))},
	}
	if event.BookingID != "" {
		h = append(h, sarama.RecordHeader{Key: []byte("booking_id"), Value: []byte(event.BookingID)})
	}
	return h
}

// LogPublisher writes events to the application log. It is used when Kafka is
// disabled and keeps the last events for inspection.
type LogPublisher struct {
	mu     sync.Mutex
	log    *logger.Logger
	events []*Event
	limit  int
}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{log: logger.GetDefault(), limit: 100}
}

func (p *LogPublisher) Publish(_ context.Context, event *Event) error {
	p.mu.Lock()
	p.events = append(p.events, event)
	if len(p.events) > p.limit {
		p.events = p.events[len(p.events)-p.limit:]
	}
	p.mu.Unlock()

	p.log.Info("booking event",
		"type", event.Type,
		"user_id", event.UserID,
		"booking_id", event.BookingID,
		"reference", event.ReferenceCode,
	)
	return nil
}

// Events returns the retained events, oldest first
func (p *LogPublisher) Events() []*Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Event, len(p.events))
	copy(out, p.events)
	return out
}

func (p *LogPublisher) Close() error { return nil }

// NewPublisher picks Kafka when enabled and falls back to the log publisher
// when the brokers cannot be reached.
func NewPublisher(cfg config.KafkaConfig) Publisher {
	if !cfg.Enabled {
		return NewLogPublisher()
	}
	publisher, err := NewKafkaPublisher(DefaultKafkaConfig(cfg))
	if err != nil {
		logger.GetDefault().Warn("kafka unavailable, logging booking events instead", "error", err)
		return NewLogPublisher()
	}
	return publisher
}
