package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mocms/pkg/logger"
	"mocms/pkg/model"
)

type mockReportService struct {
	filter model.ReportFilter
}

func (m *mockReportService) Create(ctx context.Context, input *model.CreateReport) (*model.ReportDTO, error) {
	return &model.ReportDTO{}, nil
}

func (m *mockReportService) GetByID(ctx context.Context, id string) (*model.ReportDTO, error) {
	return &model.ReportDTO{ID: id}, nil
}

func (m *mockReportService) List(ctx context.Context, filter model.ReportFilter) ([]*model.ReportDTO, int64, error) {
	m.filter = filter
	return []*model.ReportDTO{}, 0, nil
}

func (m *mockReportService) Update(ctx context.Context, id string, input *model.UpdateReport) (*model.ReportDTO, error) {
	return &model.ReportDTO{ID: id}, nil
}

func (m *mockReportService) Delete(ctx context.Context, id string, hard bool) (*model.ReportDTO, error) {
	return &model.ReportDTO{ID: id}, nil
}

func TestList_Filters(t *testing.T) {
	svc := &mockReportService{}
	h := NewReportHandler(svc, logger.Discard())

	req := httptest.NewRequest(http.MethodGet, basePath+"?uid=65f1c0ffee00000000000001&type=topic&typeId=65f1c0ffee00000000000002&category=4&state=approved", nil)
	w := httptest.NewRecorder()
	h.List(w, req, httprouter.Params{})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "65f1c0ffee00000000000001", svc.filter.UID)
	assert.Equal(t, "topic", svc.filter.Type)
	assert.Equal(t, "65f1c0ffee00000000000002", svc.filter.TypeID)
	require.NotNil(t, svc.filter.Category)
	assert.Equal(t, int64(4), *svc.filter.Category)
	require.NotNil(t, svc.filter.State)
	assert.Equal(t, 1, *svc.filter.State)
}

func TestList_BadFilters(t *testing.T) {
	h := NewReportHandler(&mockReportService{}, logger.Discard())

	for _, query := range []string{"?category=-1", "?category=two", "?state=open", "?typeId=abc", "?pageSize=0"} {
		req := httptest.NewRequest(http.MethodGet, basePath+query, nil)
		w := httptest.NewRecorder()
		h.List(w, req, httprouter.Params{})
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}
