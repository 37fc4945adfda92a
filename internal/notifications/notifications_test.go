package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"cineplex/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedEvent() *Event {
	return NewEvent(EventBookingConfirmed, "u1").
		WithBooking("b3", "GX-2025-004821").
		With("email", "alex.chen@email.com").
		With("name", "Alex Chen").
		With("movie_title", "Neon Horizon").
		With("hall", "Hall 1 (IMAX)").
		With("date", "2025-03-02").
		With("time", "19:30").
		With("seats", "E5, E6").
		With("currency", "MYR").
		With("total", 121.9).
		With("points", 182)
}

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got Event
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.Type != EventBookingConfirmed || got.ReferenceCode != "GX-2025-004821" {
			return errors.New("unexpected payload")
		}
		return nil
	})

	p := NewKafkaPublisherWithProducer(producer, "cineplex.bookings")
	require.NoError(t, p.Publish(context.Background(), confirmedEvent()))
	require.NoError(t, p.Close())
}

func TestKafkaPublisher_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewKafkaPublisherWithProducer(producer, "cineplex.bookings")
	err := p.Publish(context.Background(), confirmedEvent())
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestHeaders(t *testing.T) {
	h := headers(confirmedEvent())
	keys := map[string]string{}
	for _, rh := range h {
		keys[string(rh.Key)] = string(rh.Value)
	}
	assert.Equal(t, "BOOKING_CONFIRMED", keys["event_type"])
	assert.Equal(t, "u1", keys["user_id"])
	assert.Equal(t, "b3", keys["booking_id"])
}

func TestLogPublisher_KeepsRecentEvents(t *testing.T) {
	p := NewLogPublisher()
	p.log = logger.Discard()
	p.limit = 2

	for _, id := range []string{"b1", "b2", "b3"} {
		require.NoError(t, p.Publish(context.Background(), NewEvent(EventBookingCancelled, "u1").WithBooking(id, "")))
	}

	events := p.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "b2", events[0].BookingID)
	assert.Equal(t, "b3", events[1].BookingID)
}

func TestTemplateEmailService_Render(t *testing.T) {
	s := NewTemplateEmailService(nil)

	email, err := s.Render(confirmedEvent())
	require.NoError(t, err)
	require.NotNil(t, email)
	assert.Equal(t, "alex.chen@email.com", email.To)
	assert.Equal(t, "Booking confirmed: Neon Horizon", email.Subject)
	assert.Contains(t, email.Body, "GX-2025-004821")
	assert.Contains(t, email.Body, "MYR 121.90")

	// no template for points events
	email, err = s.Render(NewEvent(EventPointsEarned, "u1").With("email", "a@b.c"))
	require.NoError(t, err)
	assert.Nil(t, email)

	// no recipient
	email, err = s.Render(NewEvent(EventBookingConfirmed, "u1"))
	require.NoError(t, err)
	assert.Nil(t, email)
}

func TestConsumer_HandleRetries(t *testing.T) {
	attempts := 0
	var sent []Email
	email := NewTemplateEmailService(func(_ context.Context, e Email) error {
		attempts++
		if attempts < 3 {
			return errors.New("smtp busy")
		}
		sent = append(sent, e)
		return nil
	})
	c := &Consumer{config: &ConsumerConfig{MaxRetries: 3}, email: email, log: logger.Discard()}

	payload, err := confirmedEvent().ToJSON()
	require.NoError(t, err)
	require.NoError(t, c.Handle(context.Background(), payload))
	assert.Equal(t, 3, attempts)
	require.Len(t, sent, 1)
	assert.True(t, strings.HasPrefix(sent[0].Subject, "Booking confirmed"))

	assert.Error(t, c.Handle(context.Background(), []byte("{")))
}
