package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mocms/internal/topics/validator"
	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	apperrors "mocms/pkg/errors"
	"mocms/pkg/events/eventstest"
	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/normalize"
)

type mockTopicRepository struct {
	created    *model.Topic
	updateFunc func(ctx context.Context, id string, set bson.M) (*model.Topic, error)
	deleted    map[string]bool
}

func (m *mockTopicRepository) Create(ctx context.Context, topic *model.Topic) error {
	topic.ID = primitive.NewObjectID()
	m.created = topic
	return nil
}

func (m *mockTopicRepository) FindByID(ctx context.Context, id string) (*model.Topic, error) {
	return nil, fmt.Errorf("%w: %s", mongotx.ErrNotFound, id)
}

func (m *mockTopicRepository) List(ctx context.Context, filter model.TopicFilter) ([]*model.Topic, int64, error) {
	return []*model.Topic{}, 0, nil
}

func (m *mockTopicRepository) Update(ctx context.Context, id string, set bson.M) (*model.Topic, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, set)
	}
	return nil, fmt.Errorf("%w: %s", mongotx.ErrNotFound, id)
}

func (m *mockTopicRepository) SoftDelete(ctx context.Context, id string, now time.Time) (*model.Topic, error) {
	oid, err := mongotx.ParseID(id)
	if err != nil {
		return nil, err
	}
	if m.deleted == nil {
		m.deleted = map[string]bool{}
	}
	if m.deleted[id] {
		return nil, fmt.Errorf("%w: %s", mongotx.ErrNotFound, id)
	}
	m.deleted[id] = true
	return &model.Topic{ID: oid, Timestamps: model.Timestamps{CreateTime: now, UpdateTime: now, DeleteTime: &now}}, nil
}

func (m *mockTopicRepository) Delete(ctx context.Context, id string) (*model.Topic, error) {
	oid, err := mongotx.ParseID(id)
	if err != nil {
		return nil, err
	}
	return &model.Topic{ID: oid}, nil
}

func (m *mockTopicRepository) IncrementCounter(ctx context.Context, id string, field string, delta int64) error {
	return nil
}

func newTestService(repo *mockTopicRepository) (TopicService, *eventstest.Recorder) {
	log := logger.Discard()
	recorder := &eventstest.Recorder{}
	return NewTopicService(repo, validator.NewTopicValidator(log), recorder, &config.Config{Log: log}), recorder
}

func TestCreate(t *testing.T) {
	repo := &mockTopicRepository{}
	svc, recorder := newTestService(repo)

	publish := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	dto, err := svc.Create(context.Background(), &model.CreateTopic{
		UID:         " 65f1c0ffee00000000000001 ",
		Title:       "Weekly thread",
		Content:     "hello",
		State:       normalize.Bool(true),
		PublishTime: model.TimeOf(publish),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.Equal(t, "65f1c0ffee00000000000001", repo.created.UID)
	assert.True(t, repo.created.State)
	require.NotNil(t, repo.created.PublishTime)
	assert.Equal(t, publish, *repo.created.PublishTime)
	assert.Nil(t, repo.created.TopTime)

	assert.Equal(t, dto.ID, repo.created.ID.Hex())
	assert.Equal(t, []string{"topic.created"}, recorder.Types())
}

func TestUpdate_ClearsDates(t *testing.T) {
	id := primitive.NewObjectID()
	var gotSet bson.M
	repo := &mockTopicRepository{
		updateFunc: func(ctx context.Context, got string, set bson.M) (*model.Topic, error) {
			gotSet = set
			return &model.Topic{ID: id}, nil
		},
	}
	svc, _ := newTestService(repo)

	_, err := svc.Update(context.Background(), id.Hex(), &model.UpdateTopic{TopTime: model.NullableTime{Set: true}})
	require.NoError(t, err)
	assert.Contains(t, gotSet, "top_time")
	assert.Nil(t, gotSet["top_time"])
}

func TestUpdate_NoFields(t *testing.T) {
	svc, _ := newTestService(&mockTopicRepository{})

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), &model.UpdateTopic{State: normalize.Absent()})
	assert.Equal(t, "No updatable fields provided", apperrors.AsAppError(err).Message)
}

func TestDelete_Twice(t *testing.T) {
	svc, recorder := newTestService(&mockTopicRepository{})
	id := primitive.NewObjectID().Hex()

	dto, err := svc.Delete(context.Background(), id, false)
	require.NoError(t, err)
	assert.NotNil(t, dto.DeleteTime)

	_, err = svc.Delete(context.Background(), id, false)
	assert.Equal(t, http.StatusNotFound, apperrors.AsAppError(err).StatusCode())
	assert.Equal(t, []string{"topic.deleted"}, recorder.Types())
}

func TestDelete_InvalidID(t *testing.T) {
	svc, _ := newTestService(&mockTopicRepository{})

	_, err := svc.Delete(context.Background(), "not-an-id", true)
	assert.Equal(t, http.StatusBadRequest, apperrors.AsAppError(err).StatusCode())
}
