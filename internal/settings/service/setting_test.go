package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mocms/internal/settings/validator"
	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	apperrors "mocms/pkg/errors"
	"mocms/pkg/events/eventstest"
	"mocms/pkg/logger"
	"mocms/pkg/model"
)

type mockSettingRepository struct {
	created *model.Setting
	set     bson.M
}

func (m *mockSettingRepository) Create(ctx context.Context, setting *model.Setting) error {
	setting.ID = primitive.NewObjectID()
	m.created = setting
	return nil
}

func (m *mockSettingRepository) FindByID(ctx context.Context, id string) (*model.Setting, error) {
	return nil, fmt.Errorf("%w: %s", mongotx.ErrNotFound, id)
}

func (m *mockSettingRepository) List(ctx context.Context, filter model.SettingFilter) ([]*model.Setting, int64, error) {
	return []*model.Setting{}, 0, nil
}

func (m *mockSettingRepository) Update(ctx context.Context, id string, set bson.M) (*model.Setting, error) {
	m.set = set
	oid, err := mongotx.ParseID(id)
	if err != nil {
		return nil, err
	}
	return &model.Setting{ID: oid}, nil
}

func (m *mockSettingRepository) Delete(ctx context.Context, id string) (*model.Setting, error) {
	return nil, fmt.Errorf("%w: %s", mongotx.ErrNotFound, id)
}

func newTestService(repo *mockSettingRepository) (SettingService, *eventstest.Recorder) {
	log := logger.Discard()
	recorder := &eventstest.Recorder{}
	return NewSettingService(repo, validator.NewSettingValidator(log), recorder, &config.Config{Log: log}), recorder
}

func validSetting() *model.CreateSetting {
	return &model.CreateSetting{
		Title:         " Mo CMS ",
		TitleEn:       "Mo CMS",
		Keywords:      "cms",
		KeywordsEn:    "cms",
		Description:   "A CMS",
		DescriptionEn: "A CMS",
		Logo:          "/logo.png",
		Logo2:         "/logo2.png",
		Favicon:       "/favicon.ico",
		Footer:        map[string]any{"links": []any{"about"}},
	}
}

func TestCreate(t *testing.T) {
	repo := &mockSettingRepository{}
	svc, recorder := newTestService(repo)

	dto, err := svc.Create(context.Background(), validSetting())
	require.NoError(t, err)
	assert.Equal(t, "Mo CMS", dto.Title)
	assert.Equal(t, map[string]any{"links": []any{"about"}}, repo.created.Footer)
	assert.Nil(t, repo.created.SMTP)
	assert.Equal(t, []string{"setting.created"}, recorder.Types())
}

func TestCreate_MissingRequired(t *testing.T) {
	svc, _ := newTestService(&mockSettingRepository{})

	in := validSetting()
	in.Favicon = "  "
	_, err := svc.Create(context.Background(), in)
	assert.Equal(t, apperrors.CodeValidation, apperrors.AsAppError(err).Code)
}

func TestUpdate(t *testing.T) {
	repo := &mockSettingRepository{}
	svc, _ := newTestService(repo)

	i18n := " en "
	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), &model.UpdateSetting{
		I18n: &i18n,
		SMTP: map[string]any{"host": "smtp.example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"i18n": "en", "smtp": map[string]any{"host": "smtp.example.com"}}, repo.set)
	assert.NotContains(t, repo.set, "update_time")

	_, err = svc.Update(context.Background(), primitive.NewObjectID().Hex(), &model.UpdateSetting{})
	assert.Equal(t, "No updatable fields provided", apperrors.AsAppError(err).Message)
}
