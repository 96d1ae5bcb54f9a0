package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mocms/internal/comments/validator"
	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	apperrors "mocms/pkg/errors"
	"mocms/pkg/events/eventstest"
	"mocms/pkg/logger"
	"mocms/pkg/model"
)

type mockCommentRepository struct {
	rows map[string]*model.Comment
}

func newMockRepo() *mockCommentRepository {
	return &mockCommentRepository{rows: map[string]*model.Comment{}}
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	comment.ID = primitive.NewObjectID()
	m.rows[comment.ID.Hex()] = comment
	return nil
}

func (m *mockCommentRepository) live(id string) (*model.Comment, error) {
	if _, err := mongotx.ParseID(id); err != nil {
		return nil, err
	}
	c, ok := m.rows[id]
	if !ok || c.Deleted() {
		return nil, fmt.Errorf("%w: %s", mongotx.ErrNotFound, id)
	}
	return c, nil
}

func (m *mockCommentRepository) FindByID(ctx context.Context, id string) (*model.Comment, error) {
	return m.live(id)
}

func (m *mockCommentRepository) List(ctx context.Context, filter model.CommentFilter) ([]*model.Comment, int64, error) {
	out := []*model.Comment{}
	for _, c := range m.rows {
		if filter.IncludeDeleted || !c.Deleted() {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockCommentRepository) Update(ctx context.Context, id string, set bson.M) (*model.Comment, error) {
	c, err := m.live(id)
	if err != nil {
		return nil, err
	}
	if content, ok := set["content"].(string); ok {
		c.Content = content
	}
	if ts, ok := set["update_time"].(time.Time); ok {
		c.UpdateTime = ts
	}
	return c, nil
}

func (m *mockCommentRepository) SoftDelete(ctx context.Context, id string, now time.Time) (*model.Comment, error) {
	c, err := m.live(id)
	if err != nil {
		return nil, err
	}
	c.DeleteTime = &now
	c.UpdateTime = now
	return c, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id string) (*model.Comment, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", mongotx.ErrNotFound, id)
	}
	delete(m.rows, id)
	return c, nil
}

func newTestService(repo *mockCommentRepository) (CommentService, *eventstest.Recorder) {
	log := logger.Discard()
	recorder := &eventstest.Recorder{}
	return NewCommentService(repo, validator.NewCommentValidator(log), recorder, &config.Config{Log: log}), recorder
}

func validComment() *model.CreateComment {
	return &model.CreateComment{
		UID:     "65f1c0ffee00000000000001",
		Type:    " article ",
		TypeID:  "65f1c0ffee00000000000002",
		Content: "  great post  ",
	}
}

func TestLifecycle(t *testing.T) {
	repo := newMockRepo()
	svc, recorder := newTestService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validComment())
	require.NoError(t, err)
	assert.Equal(t, "article", created.Type)
	assert.Equal(t, "great post", created.Content)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	content := "edited"
	updated, err := svc.Update(ctx, created.ID, &model.UpdateComment{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	deleted, err := svc.Delete(ctx, created.ID, false)
	require.NoError(t, err)
	require.NotNil(t, deleted.DeleteTime)

	_, err = svc.GetByID(ctx, created.ID)
	assert.Equal(t, http.StatusNotFound, apperrors.AsAppError(err).StatusCode())

	list, total, err := svc.List(ctx, model.CommentFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Zero(t, total)

	_, err = svc.Delete(ctx, created.ID, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"comment.created", "comment.updated", "comment.deleted", "comment.deleted"}, recorder.Types())
}

func TestCreate_EventCarriesTarget(t *testing.T) {
	svc, recorder := newTestService(newMockRepo())

	_, err := svc.Create(context.Background(), validComment())
	require.NoError(t, err)

	event, ok := recorder.Last()
	require.True(t, ok)

	var data model.CommentDTO
	require.NoError(t, json.Unmarshal(event.Data, &data))
	assert.Equal(t, model.CommentTypeArticle, data.Type)
	assert.Equal(t, "65f1c0ffee00000000000002", data.TypeID)
}

func TestCreate_Invalid(t *testing.T) {
	svc, recorder := newTestService(newMockRepo())

	in := validComment()
	in.Content = "   "
	_, err := svc.Create(context.Background(), in)
	assert.Equal(t, apperrors.CodeValidation, apperrors.AsAppError(err).Code)
	assert.Empty(t, recorder.Events())
}

func TestUpdate_NoFields(t *testing.T) {
	svc, _ := newTestService(newMockRepo())

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), &model.UpdateComment{})
	assert.Equal(t, "No updatable fields provided", apperrors.AsAppError(err).Message)
}
