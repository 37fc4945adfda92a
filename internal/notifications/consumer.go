package notifications

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cineplex/internal/shared/config"
	"cineplex/pkg/logger"

	"github.com/IBM/sarama"
)

// ConsumerConfig configures the booking event consumer group
type ConsumerConfig struct {
	Brokers      []string
	GroupID      string
	Topics       []string
	MaxRetries   int
	RetryBackoff time.Duration
	OffsetOldest bool
}

func DefaultConsumerConfig(cfg config.KafkaConfig) *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:      cfg.Brokers,
		GroupID:      cfg.ClientID + "-mailer",
		Topics:       []string{cfg.Topic},
		MaxRetries:   3,
		RetryBackoff: time.Second,
	}
}

// Consumer reads booking events and hands them to an EmailService
type Consumer struct {
	group  sarama.ConsumerGroup
	config *ConsumerConfig
	email  EmailService
	log    *logger.Logger
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

func NewConsumer(cfg *ConsumerConfig, email EmailService) (*Consumer, error) {
	sc := sarama.NewConfig()
	sc.Consumer.Return.Errors = true
	sc.Consumer.Offsets.AutoCommit.Enable = true
	sc.Consumer.Offsets.AutoCommit.Interval = time.Second
	if cfg.OffsetOldest {
		sc.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		sc.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, sc)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}
	return &Consumer{group: group, config: cfg, email: email, log: logger.GetDefault()}, nil
}

// Start consumes until Stop is called or ctx ends
func (c *Consumer) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)
	handler := &groupHandler{consumer: c}

	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		for err := range c.group.Errors() {
			c.log.Error("consumer group error", "error", err)
		}
	}()
	go func() {
		defer c.wg.Done()
		for ctx.Err() == nil {
			if err := c.group.Consume(ctx, c.config.Topics, handler); err != nil {
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return
				}
				c.log.Error("error consuming booking events", "error", err)
				time.Sleep(time.Second)
			}
		}
	}()
	c.log.Info("booking event consumer started", "topics", c.config.Topics, "group", c.config.GroupID)
}

func (c *Consumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	err := c.group.Close()
	c.wg.Wait()
	if err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

// Handle processes one raw message with retries
func (c *Consumer) Handle(ctx context.Context, payload []byte) error {
	event, err := EventFromJSON(payload)
	if err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}

	backoff := c.config.RetryBackoff
	for attempt := 0; ; attempt++ {
		err = c.email.SendEvent(ctx, event)
		if err == nil || attempt >= c.config.MaxRetries {
			return err
		}
		select {
		case <-time.After(backoff * time.Duration(1<<attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

type groupHandler struct {
	consumer *Consumer
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.consumer.Handle(session.Context(), message.Value); err != nil {
				h.consumer.log.ErrorWithContext(session.Context(), "failed to process booking event", err, map[string]interface{}{
					"partition": message.Partition,
					"offset":    message.Offset,
				})
				continue
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
