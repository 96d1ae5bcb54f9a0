package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/normalize"
)

type mockTagService struct {
	filter  model.TagFilter
	created *model.CreateTag
}

func (m *mockTagService) Create(ctx context.Context, input *model.CreateTag) (*model.TagDTO, error) {
	m.created = input
	return &model.TagDTO{Title: input.Title}, nil
}

func (m *mockTagService) GetByID(ctx context.Context, id string) (*model.TagDTO, error) {
	return &model.TagDTO{ID: id}, nil
}

func (m *mockTagService) List(ctx context.Context, filter model.TagFilter) ([]*model.TagDTO, int64, error) {
	m.filter = filter
	return []*model.TagDTO{}, 0, nil
}

func (m *mockTagService) Update(ctx context.Context, id string, input *model.UpdateTag) (*model.TagDTO, error) {
	return &model.TagDTO{ID: id}, nil
}

func (m *mockTagService) Delete(ctx context.Context, id string, hard bool) (*model.TagDTO, error) {
	if hard {
		return nil, nil
	}
	return &model.TagDTO{ID: id}, nil
}

func TestList_IsTopFilter(t *testing.T) {
	tests := []struct {
		query string
		want  *bool
		code  int
	}{
		{"", nil, http.StatusOK},
		{"?isTop=1", boolPtr(true), http.StatusOK},
		{"?isTop=false", boolPtr(false), http.StatusOK},
		{"?isTop=2", nil, http.StatusBadRequest},
		{"?isTop=yes", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			svc := &mockTagService{}
			h := NewTagHandler(svc, logger.Discard())

			req := httptest.NewRequest(http.MethodGet, basePath+tt.query, nil)
			w := httptest.NewRecorder()
			h.List(w, req, httprouter.Params{})

			require.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, tt.want, svc.filter.IsTop)
			}
		})
	}
}

func TestCreate_DecodesIsTop(t *testing.T) {
	svc := &mockTagService{}
	h := NewTagHandler(svc, logger.Discard())

	req := httptest.NewRequest(http.MethodPost, basePath, strings.NewReader(`{"title":"Go","isTop":1}`))
	w := httptest.NewRecorder()
	h.Create(w, req, httprouter.Params{})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, normalize.Int(1), svc.created.IsTop)
}

func TestCreate_NonIntegralIsTop(t *testing.T) {
	h := NewTagHandler(&mockTagService{}, logger.Discard())

	req := httptest.NewRequest(http.MethodPost, basePath, strings.NewReader(`{"title":"Go","isTop":1.5}`))
	w := httptest.NewRecorder()
	h.Create(w, req, httprouter.Params{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDelete_Hard(t *testing.T) {
	h := NewTagHandler(&mockTagService{}, logger.Discard())

	req := httptest.NewRequest(http.MethodDelete, basePath+"/65f1c0ffee00000000000001?hard=true", nil)
	w := httptest.NewRecorder()
	h.Delete(w, req, httprouter.Params{{Key: "id", Value: "65f1c0ffee00000000000001"}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func boolPtr(b bool) *bool { return &b }
