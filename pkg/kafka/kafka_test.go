package kafka

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/segmentio/kafka-go/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mocms/pkg/logger"
)

func TestMessageBuilder(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	msg, err := NewMessage().
		WithKey("65f1c0ffee00000000000001").
		WithValue(map[string]string{"title": "go"}).
		WithEventType("tag.created").
		WithSource("cms").
		WithCorrelationID("req-1").
		WithTimestamp(ts).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "65f1c0ffee00000000000001", msg.Key)
	assert.JSONEq(t, `{"title":"go"}`, string(msg.Value))
	assert.Equal(t, "tag.created", msg.GetEventType())
	assert.Equal(t, "req-1", msg.GetCorrelationID())
	assert.Len(t, msg.GetEventID(), 36)
	assert.Equal(t, "2024-03-01T12:00:00Z", msg.Headers[HeaderTimestamp])
}

func TestMessageBuilder_EncodeError(t *testing.T) {
	_, err := NewMessage().WithKey("k").WithValue(make(chan int)).Build()
	assert.Error(t, err)
}

func TestRetryCount(t *testing.T) {
	msg := Message{Headers: map[string]string{}}
	assert.Equal(t, 0, msg.GetRetryCount())

	for i := 0; i < 12; i++ {
		msg.IncrementRetryCount()
	}
	assert.Equal(t, 12, msg.GetRetryCount())
	assert.Equal(t, "12", msg.Headers[HeaderRetryCount])

	msg.Headers[HeaderRetryCount] = "junk"
	assert.Equal(t, 0, msg.GetRetryCount())
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ErrorTypeUnknown},
		{"tagged transient", NewTransientError("db down", errors.New("x")), ErrorTypeTransient},
		{"wrapped permanent", fmt.Errorf("handler: %w", NewPermanentError("bad payload", nil)), ErrorTypePermanent},
		{"network message", errors.New("dial tcp: Connection Refused"), ErrorTypeTransient},
		{"unknown", errors.New("something odd"), ErrorTypePermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	transient := NewTransientError("timeout", nil)

	assert.True(t, ShouldRetry(transient, 0, 3))
	assert.False(t, ShouldRetry(transient, 3, 3))
	assert.False(t, ShouldRetry(NewPermanentError("bad", nil), 0, 3))
	assert.False(t, ShouldRetry(nil, 0, 3))
}

func TestConsumer_ProcessMessageRetriesTransient(t *testing.T) {
	attempts := 0
	c := &Consumer{
		maxRetries: 3,
		log:        logger.Discard(),
		handler: func(ctx context.Context, msg Message) error {
			attempts++
			if attempts < 3 {
				return NewTransientError("flaky", nil)
			}
			return nil
		},
	}

	err := c.processMessage(context.Background(), Message{Headers: map[string]string{}})
	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestConsumer_ProcessMessageStopsOnPermanent(t *testing.T) {
	attempts := 0
	c := &Consumer{
		maxRetries: 3,
		log:        logger.Discard(),
		handler: func(ctx context.Context, msg Message) error {
			attempts++
			return NewPermanentError("bad payload", nil)
		},
	}

	err := c.processMessage(context.Background(), Message{Headers: map[string]string{}})
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestConsumer_MiddlewareOrder(t *testing.T) {
	var order []string
	c := &Consumer{
		log: logger.Discard(),
		handler: func(ctx context.Context, msg Message) error {
			order = append(order, "handler")
			return nil
		},
	}
	for _, name := range []string{"outer", "inner"} {
		name := name
		c.Use(func(ctx context.Context, msg Message, next MessageHandler) error {
			order = append(order, name)
			return next(ctx, msg)
		})
	}

	require.NoError(t, c.processMessage(context.Background(), Message{Headers: map[string]string{}}))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestProducer_RejectsInvalidMessages(t *testing.T) {
	p := &Producer{topic: "t", log: logger.Discard()}

	assert.ErrorIs(t, p.Publish(context.Background(), Message{Value: []byte("{}")}), ErrEmptyKey)
	assert.ErrorIs(t, p.Publish(context.Background(), Message{Key: "k"}), ErrEmptyValue)

	p.closed = true
	assert.ErrorIs(t, p.Publish(context.Background(), Message{Key: "k", Value: []byte("{}")}), ErrProducerClosed)
}

func TestCompressionCodec(t *testing.T) {
	assert.Equal(t, compress.None, compressionCodec("none"))
	assert.Equal(t, compress.Zstd, compressionCodec("zstd"))
	assert.Equal(t, compress.Snappy, compressionCodec("unknown"))
}
