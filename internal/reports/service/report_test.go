package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mocms/internal/reports/validator"
	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	apperrors "mocms/pkg/errors"
	"mocms/pkg/events/eventstest"
	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/normalize"
)

type mockReportRepository struct {
	created *model.Report
	set     bson.M

	createErr error
}

func (m *mockReportRepository) Create(ctx context.Context, report *model.Report) error {
	if m.createErr != nil {
		return m.createErr
	}
	report.ID = primitive.NewObjectID()
	m.created = report
	return nil
}

func (m *mockReportRepository) FindByID(ctx context.Context, id string) (*model.Report, error) {
	return nil, fmt.Errorf("%w: %s", mongotx.ErrInvalidID, id)
}

func (m *mockReportRepository) List(ctx context.Context, filter model.ReportFilter) ([]*model.Report, int64, error) {
	return []*model.Report{}, 0, nil
}

func (m *mockReportRepository) Update(ctx context.Context, id string, set bson.M) (*model.Report, error) {
	m.set = set
	return &model.Report{}, nil
}

func (m *mockReportRepository) SoftDelete(ctx context.Context, id string, now time.Time) (*model.Report, error) {
	return &model.Report{Timestamps: model.Timestamps{DeleteTime: &now}}, nil
}

func (m *mockReportRepository) Delete(ctx context.Context, id string) (*model.Report, error) {
	return &model.Report{Type: model.CommentTypeArticle}, nil
}

func newTestService(repo *mockReportRepository) (ReportService, *eventstest.Recorder) {
	log := logger.Discard()
	recorder := &eventstest.Recorder{}
	return NewReportService(repo, validator.NewReportValidator(log), recorder, &config.Config{Log: log}), recorder
}

func validReport() *model.CreateReport {
	return &model.CreateReport{
		UID:      "65f1c0ffee00000000000001",
		Type:     " article ",
		TypeID:   "65f1c0ffee00000000000002",
		Summary:  "spam",
		TypeData: map[string]any{"title": "Buy now"},
	}
}

func TestCreate_Defaults(t *testing.T) {
	repo := &mockReportRepository{}
	svc, recorder := newTestService(repo)

	dto, err := svc.Create(context.Background(), validReport())
	require.NoError(t, err)
	assert.Equal(t, "article", repo.created.Type)
	assert.Equal(t, int64(0), repo.created.Category)
	assert.Equal(t, normalize.CodeNeutral, repo.created.State)
	assert.Equal(t, normalize.State("pending"), dto.State)

	event, ok := recorder.Last()
	require.True(t, ok)
	var data model.ReportDTO
	require.NoError(t, json.Unmarshal(event.Data, &data))
	assert.Equal(t, map[string]any{"title": "Buy now"}, data.TypeData)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *model.CreateReport)
	}{
		{"missing type", func(in *model.CreateReport) { in.Type = "  " }},
		{"bad type id", func(in *model.CreateReport) { in.TypeID = "42" }},
		{"negative category", func(in *model.CreateReport) { n := int64(-1); in.Category = &n }},
		{"unknown state", func(in *model.CreateReport) { in.State = normalize.Label("closed") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockReportRepository{}
			svc, _ := newTestService(repo)

			in := validReport()
			tt.mutate(in)
			_, err := svc.Create(context.Background(), in)
			assert.Equal(t, apperrors.CodeValidation, apperrors.AsAppError(err).Code)
			assert.Nil(t, repo.created)
		})
	}
}

func TestCreate_RepositoryFailure(t *testing.T) {
	svc, recorder := newTestService(&mockReportRepository{createErr: fmt.Errorf("socket closed")})

	_, err := svc.Create(context.Background(), validReport())
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeInternal, appErr.Code)
	assert.Equal(t, "Failed to create report", appErr.Message)
	assert.Empty(t, recorder.Events())
}

func TestUpdate(t *testing.T) {
	repo := &mockReportRepository{}
	svc, _ := newTestService(repo)

	category := int64(3)
	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), &model.UpdateReport{
		Category: &category,
		State:    normalize.Label("rejected"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), repo.set["category"])
	assert.Equal(t, 0, repo.set["state"])
	assert.NotContains(t, repo.set, "type_data")
}

func TestGetByID_InvalidID(t *testing.T) {
	svc, _ := newTestService(&mockReportRepository{})

	_, err := svc.GetByID(context.Background(), "nope")
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeInvalidInput, appErr.Code)
	assert.Equal(t, "Invalid report ID format", appErr.Message)
}

func TestDelete_HardEmitsSnapshot(t *testing.T) {
	svc, recorder := newTestService(&mockReportRepository{})

	dto, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex(), true)
	require.NoError(t, err)
	assert.Nil(t, dto)

	event, ok := recorder.Last()
	require.True(t, ok)
	assert.Equal(t, "report.deleted", event.Type)
	assert.True(t, event.Hard)
}
