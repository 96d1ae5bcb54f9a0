package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mocms/internal/badges/validator"
	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	apperrors "mocms/pkg/errors"
	"mocms/pkg/events/eventstest"
	"mocms/pkg/logger"
	"mocms/pkg/model"
)

type mockBadgeRepository struct {
	badges map[string]*model.Badge
}

func (m *mockBadgeRepository) Create(ctx context.Context, badge *model.Badge) error {
	badge.ID = primitive.NewObjectID()
	m.badges[badge.ID.Hex()] = badge
	return nil
}

func (m *mockBadgeRepository) FindByID(ctx context.Context, id string) (*model.Badge, error) {
	if b, ok := m.badges[id]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("%w: %s", mongotx.ErrNotFound, id)
}

func (m *mockBadgeRepository) List(ctx context.Context, filter model.BadgeFilter) ([]*model.Badge, int64, error) {
	out := make([]*model.Badge, 0, len(m.badges))
	for _, b := range m.badges {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (m *mockBadgeRepository) Update(ctx context.Context, id string, set bson.M) (*model.Badge, error) {
	b, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Name = set["name"].(string)
	return b, nil
}

func (m *mockBadgeRepository) Delete(ctx context.Context, id string) (*model.Badge, error) {
	b, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	delete(m.badges, id)
	return b, nil
}

func TestBadgeLifecycle(t *testing.T) {
	log := logger.Discard()
	repo := &mockBadgeRepository{badges: map[string]*model.Badge{}}
	recorder := &eventstest.Recorder{}
	svc := NewBadgeService(repo, validator.NewBadgeValidator(log), recorder, &config.Config{Log: log})
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.CreateBadge{Name: "  Early   adopter "})
	require.NoError(t, err)
	assert.Equal(t, "Early adopter", created.Name)

	name := "Pioneer"
	updated, err := svc.Update(ctx, created.ID, &model.UpdateBadge{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Pioneer", updated.Name)

	_, err = svc.Update(ctx, created.ID, &model.UpdateBadge{})
	assert.Equal(t, "No updatable fields provided", apperrors.AsAppError(err).Message)

	list, total, err := svc.List(ctx, model.BadgeFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(1), total)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.Equal(t, http.StatusNotFound, apperrors.AsAppError(err).StatusCode())

	err = svc.Delete(ctx, created.ID)
	assert.Equal(t, http.StatusNotFound, apperrors.AsAppError(err).StatusCode())

	assert.Equal(t, []string{"badge.created", "badge.updated", "badge.deleted"}, recorder.Types())
	last, _ := recorder.Last()
	assert.True(t, last.Hard)
}

func TestCreate_BlankName(t *testing.T) {
	log := logger.Discard()
	svc := NewBadgeService(&mockBadgeRepository{badges: map[string]*model.Badge{}}, validator.NewBadgeValidator(log), nil, &config.Config{Log: log})

	_, err := svc.Create(context.Background(), &model.CreateBadge{Name: "   "})
	assert.Equal(t, apperrors.CodeValidation, apperrors.AsAppError(err).Code)
}
