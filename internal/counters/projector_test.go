package counters

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mongotx "mocms/pkg/db/mongo"
	"mocms/pkg/events"
	"mocms/pkg/kafka"
	"mocms/pkg/logger"
	"mocms/pkg/model"
)

type increment struct {
	id    string
	field string
	delta int64
}

type fakeIncrementer struct {
	calls []increment
	err   error
}

func (f *fakeIncrementer) IncrementCounter(ctx context.Context, id string, field string, delta int64) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, increment{id: id, field: field, delta: delta})
	return nil
}

func commentMessage(t *testing.T, action events.Action, hard bool, comment model.CommentDTO) kafka.Message {
	t.Helper()

	event, err := events.New("comment", action, comment.ID, comment)
	require.NoError(t, err)
	event.Hard = hard

	msg, err := kafka.NewMessage().
		WithKey(event.ID).
		WithValue(event).
		WithEventType(event.Type).
		Build()
	require.NoError(t, err)
	return msg
}

func articleComment() model.CommentDTO {
	return model.CommentDTO{
		ID:     "65f1c0ffee00000000000001",
		Type:   model.CommentTypeArticle,
		TypeID: "65f1c0ffee00000000000002",
	}
}

func TestHandle_Created(t *testing.T) {
	articles, topics := &fakeIncrementer{}, &fakeIncrementer{}
	p := NewProjector(articles, topics, logger.Discard())

	require.NoError(t, p.Handle(context.Background(), commentMessage(t, events.ActionCreated, false, articleComment())))

	assert.Equal(t, []increment{{id: "65f1c0ffee00000000000002", field: "comments", delta: 1}}, articles.calls)
	assert.Empty(t, topics.calls)
}

func TestHandle_DeletedTopicComment(t *testing.T) {
	articles, topics := &fakeIncrementer{}, &fakeIncrementer{}
	p := NewProjector(articles, topics, logger.Discard())

	comment := articleComment()
	comment.Type = model.CommentTypeTopic
	now := time.Now()
	comment.DeleteTime = &now

	require.NoError(t, p.Handle(context.Background(), commentMessage(t, events.ActionDeleted, false, comment)))

	assert.Equal(t, []increment{{id: "65f1c0ffee00000000000002", field: "comments", delta: -1}}, topics.calls)
	assert.Empty(t, articles.calls)
}

func TestHandle_HardDelete(t *testing.T) {
	articles := &fakeIncrementer{}
	p := NewProjector(articles, &fakeIncrementer{}, logger.Discard())

	require.NoError(t, p.Handle(context.Background(), commentMessage(t, events.ActionDeleted, true, articleComment())))
	assert.Len(t, articles.calls, 1)

	comment := articleComment()
	now := time.Now()
	comment.DeleteTime = &now
	require.NoError(t, p.Handle(context.Background(), commentMessage(t, events.ActionDeleted, true, comment)))
	assert.Len(t, articles.calls, 1, "already counted by the soft delete")
}

func TestHandle_Ignored(t *testing.T) {
	articles := &fakeIncrementer{}
	p := NewProjector(articles, &fakeIncrementer{}, logger.Discard())

	require.NoError(t, p.Handle(context.Background(), commentMessage(t, events.ActionUpdated, false, articleComment())))

	comment := articleComment()
	comment.Type = "video"
	require.NoError(t, p.Handle(context.Background(), commentMessage(t, events.ActionCreated, false, comment)))

	event, err := events.New("tag", events.ActionCreated, "65f1c0ffee00000000000003", map[string]any{"title": "go"})
	require.NoError(t, err)
	msg, err := kafka.NewMessage().WithKey(event.ID).WithValue(event).Build()
	require.NoError(t, err)
	require.NoError(t, p.Handle(context.Background(), msg))

	assert.Empty(t, articles.calls)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantType kafka.ErrorType
		wantNil  bool
	}{
		{"target gone", fmt.Errorf("%w: x", mongotx.ErrNotFound), 0, true},
		{"bad target id", fmt.Errorf("%w: x", mongotx.ErrInvalidID), kafka.ErrorTypePermanent, false},
		{"database down", errors.New("server selection error"), kafka.ErrorTypeTransient, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjector(&fakeIncrementer{err: tt.repoErr}, &fakeIncrementer{}, logger.Discard())

			err := p.Handle(context.Background(), commentMessage(t, events.ActionCreated, false, articleComment()))
			if tt.wantNil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantType, kafka.ClassifyError(err))
		})
	}
}

func TestHandle_UndecodablePayload(t *testing.T) {
	p := NewProjector(&fakeIncrementer{}, &fakeIncrementer{}, logger.Discard())

	err := p.Handle(context.Background(), kafka.Message{Key: "k", Value: []byte("not json")})
	require.Error(t, err)
	assert.Equal(t, kafka.ErrorTypePermanent, kafka.ClassifyError(err))
}
