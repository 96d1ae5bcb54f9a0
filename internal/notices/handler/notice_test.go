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

type mockNoticeService struct {
	filter model.NoticeFilter
}

func (m *mockNoticeService) Create(ctx context.Context, input *model.CreateNotice) (*model.NoticeDTO, error) {
	return &model.NoticeDTO{}, nil
}

func (m *mockNoticeService) GetByID(ctx context.Context, id string) (*model.NoticeDTO, error) {
	return &model.NoticeDTO{ID: id}, nil
}

func (m *mockNoticeService) List(ctx context.Context, filter model.NoticeFilter) ([]*model.NoticeDTO, int64, error) {
	m.filter = filter
	return []*model.NoticeDTO{{ID: "65f1c0ffee00000000000009", IsNew: true}}, 41, nil
}

func (m *mockNoticeService) Update(ctx context.Context, id string, input *model.UpdateNotice) (*model.NoticeDTO, error) {
	return &model.NoticeDTO{ID: id}, nil
}

func (m *mockNoticeService) Delete(ctx context.Context, id string, hard bool) (*model.NoticeDTO, error) {
	return &model.NoticeDTO{ID: id}, nil
}

func TestList_Filters(t *testing.T) {
	svc := &mockNoticeService{}
	h := NewNoticeHandler(svc, logger.Discard())

	req := httptest.NewRequest(http.MethodGet, basePath+"?uid=65f1c0ffee00000000000001&sendUid=65f1c0ffee00000000000002&isNew=0&page=2&pageSize=20", nil)
	w := httptest.NewRecorder()
	h.List(w, req, httprouter.Params{})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "65f1c0ffee00000000000001", svc.filter.UID)
	assert.Equal(t, "65f1c0ffee00000000000002", svc.filter.SendUID)
	require.NotNil(t, svc.filter.IsNew)
	assert.False(t, *svc.filter.IsNew)
	assert.Contains(t, w.Body.String(), `"totalPages":3`)
}

func TestList_BadFilters(t *testing.T) {
	h := NewNoticeHandler(&mockNoticeService{}, logger.Discard())

	for _, query := range []string{"?sendUid=42", "?isNew=maybe", "?includeDeleted=sometimes"} {
		req := httptest.NewRequest(http.MethodGet, basePath+query, nil)
		w := httptest.NewRecorder()
		h.List(w, req, httprouter.Params{})
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestDelete_SoftReturnsNotice(t *testing.T) {
	h := NewNoticeHandler(&mockNoticeService{}, logger.Discard())

	req := httptest.NewRequest(http.MethodDelete, basePath+"/65f1c0ffee00000000000001", nil)
	w := httptest.NewRecorder()
	h.Delete(w, req, httprouter.Params{{Key: "id", Value: "65f1c0ffee00000000000001"}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"65f1c0ffee00000000000001"`)
}
