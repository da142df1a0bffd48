package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/logger"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
	deadline bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, w.deadline = ctx.Deadline()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_PublishStatementCreated(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, time.Second, logger.NewNoopLogger())

	event := entity.StatementCreatedEvent{
		EventType:   entity.EventStatementCreated,
		StatementID: "st-1",
		UserID:      "user-1",
		Type:        "deposit",
		Amount:      "10.00",
		OccurredAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishStatementCreated(context.Background(), event))
	require.Len(t, writer.messages, 1)
	assert.True(t, writer.deadline)

	msg := writer.messages[0]
	assert.Equal(t, "user-1", string(msg.Key))
	assert.Equal(t, "event_type", msg.Headers[0].Key)

	var decoded entity.StatementCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestKafkaPublisher_WriteFailure(t *testing.T) {
	writer := &fakeWriter{err: errors.New("leader not available")}
	publisher := newKafkaPublisher(writer, 0, logger.NewNoopLogger())

	err := publisher.PublishStatementCreated(context.Background(), entity.StatementCreatedEvent{EventType: entity.EventStatementCreated})

	assert.ErrorContains(t, err, "leader not available")
	assert.Equal(t, 5*time.Second, publisher.timeout)
}

func TestKafkaPublisher_Close(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, time.Second, logger.NewNoopLogger())

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestNewKafkaPublisher_Validation(t *testing.T) {
	_, err := NewKafkaPublisher(KafkaConfig{Topic: "statements"}, logger.NewNoopLogger())
	assert.Error(t, err)

	_, err = NewKafkaPublisher(KafkaConfig{Brokers: []string{"localhost:9092"}}, logger.NewNoopLogger())
	assert.Error(t, err)

	p, err := NewKafkaPublisher(KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "statements"}, logger.NewNoopLogger())
	require.NoError(t, err)
	assert.NoError(t, p.Close())
}
