package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mocms/pkg/kafka"
	"mocms/pkg/logger"
	"mocms/pkg/middleware"
)

type fakeProducer struct {
	messages []kafka.Message
	err      error
}

func (f *fakeProducer) Publish(ctx context.Context, msg kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeProducer) Close() error { return nil }

type recordingPublisher struct {
	events []Event
	err    error
}

func (r *recordingPublisher) Publish(ctx context.Context, event Event) error {
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingPublisher) Close() error { return nil }

func TestNew(t *testing.T) {
	event, err := New("comment", ActionCreated, "65f1c0ffee00000000000001", map[string]string{"type": "article"})
	require.NoError(t, err)

	assert.Equal(t, "comment.created", event.Type)
	assert.Equal(t, "comment", event.Resource)
	assert.JSONEq(t, `{"type":"article"}`, string(event.Data))
	assert.False(t, event.OccurredAt.IsZero())
}

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := &fakeProducer{}
	publisher := &KafkaPublisher{producer: producer, source: "cms"}

	event, err := New("tag", ActionUpdated, "65f1c0ffee00000000000002", map[string]any{"isTop": true})
	require.NoError(t, err)

	ctx := WithCorrelationID(context.Background(), "req-42")
	require.NoError(t, publisher.Publish(ctx, event))
	require.Len(t, producer.messages, 1)

	msg := producer.messages[0]
	assert.Equal(t, event.ID, msg.Key)
	assert.Equal(t, "tag.updated", msg.GetEventType())
	assert.Equal(t, "cms", msg.Headers[kafka.HeaderSource])
	assert.Equal(t, "req-42", msg.GetCorrelationID())

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.Type, decoded.Type)
	assert.JSONEq(t, `{"isTop":true}`, string(decoded.Data))
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	publisher := &KafkaPublisher{producer: &fakeProducer{err: errors.New("broker down")}, source: "cms"}

	event, err := New("tag", ActionDeleted, "65f1c0ffee00000000000002", nil)
	require.NoError(t, err)

	assert.Error(t, publisher.Publish(context.Background(), event))
}

func TestEmitter_SwallowsErrors(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("broker down")}
	emitter := NewEmitter(publisher, "report", logger.Discard())

	emitter.Emit(context.Background(), ActionCreated, "id-1", map[string]int{"state": -1})
	emitter.EmitHardDelete(context.Background(), "id-1", nil)

	require.Len(t, publisher.events, 2)
	assert.Equal(t, "report.created", publisher.events[0].Type)
	assert.False(t, publisher.events[0].Hard)
	assert.Equal(t, "report.deleted", publisher.events[1].Type)
	assert.True(t, publisher.events[1].Hard)
}

func TestNewEmitter_DefaultsToNop(t *testing.T) {
	emitter := NewEmitter(nil, "badge", logger.Discard())
	assert.NotPanics(t, func() {
		emitter.Emit(context.Background(), ActionCreated, "id", nil)
	})
}

func TestCorrelationID_FallsBackToRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-7")
	assert.Equal(t, "req-7", correlationID(ctx))
	assert.Equal(t, "explicit", correlationID(WithCorrelationID(ctx, "explicit")))
}
