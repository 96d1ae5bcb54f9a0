package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "mocms/pkg/errors"
	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/normalize"
)

// Mock service for testing
type mockArticleService struct {
	createFunc func(ctx context.Context, input *model.CreateArticle) (*model.ArticleDTO, error)
	listFunc   func(ctx context.Context, filter model.ArticleFilter) ([]*model.ArticleDTO, int64, error)
	updateFunc func(ctx context.Context, id string, input *model.UpdateArticle) (*model.ArticleDTO, error)
	deleteFunc func(ctx context.Context, id string, hard bool) (*model.ArticleDTO, error)
}

func (m *mockArticleService) Create(ctx context.Context, input *model.CreateArticle) (*model.ArticleDTO, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, input)
	}
	return &model.ArticleDTO{}, nil
}

func (m *mockArticleService) GetByID(ctx context.Context, id string) (*model.ArticleDTO, error) {
	return nil, apperrors.NotFoundWithID("Article", id)
}

func (m *mockArticleService) List(ctx context.Context, filter model.ArticleFilter) ([]*model.ArticleDTO, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return []*model.ArticleDTO{}, 0, nil
}

func (m *mockArticleService) Update(ctx context.Context, id string, input *model.UpdateArticle) (*model.ArticleDTO, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, input)
	}
	return &model.ArticleDTO{ID: id}, nil
}

func (m *mockArticleService) Delete(ctx context.Context, id string, hard bool) (*model.ArticleDTO, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, hard)
	}
	return &model.ArticleDTO{ID: id}, nil
}

func newTestHandler(svc *mockArticleService) *ArticleHandler {
	return NewArticleHandler(svc, logger.Discard())
}

func TestCreate_DecodesStateVariants(t *testing.T) {
	tests := []struct {
		body string
		kind normalize.Kind
	}{
		{`{"title":"t","content":"c"}`, normalize.KindAbsent},
		{`{"title":"t","content":"c","state":null}`, normalize.KindAbsent},
		{`{"title":"t","content":"c","state":true}`, normalize.KindBool},
		{`{"title":"t","content":"c","state":1}`, normalize.KindInt},
		{`{"title":"t","content":"c","state":"true"}`, normalize.KindLabel},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var got normalize.Kind
			h := newTestHandler(&mockArticleService{
				createFunc: func(ctx context.Context, input *model.CreateArticle) (*model.ArticleDTO, error) {
					got = input.State.Kind()
					return &model.ArticleDTO{ID: "1"}, nil
				},
			})

			req := httptest.NewRequest(http.MethodPost, basePath, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Create(w, req, httprouter.Params{})

			assert.Equal(t, http.StatusCreated, w.Code)
			assert.Equal(t, tt.kind, got)
		})
	}
}

func TestCreate_MalformedJSON(t *testing.T) {
	h := newTestHandler(&mockArticleService{})

	for _, body := range []string{`{"title":`, `{"title":"t","state":1.5}`, `{"title":"t","state":[1]}`} {
		req := httptest.NewRequest(http.MethodPost, basePath, strings.NewReader(body))
		w := httptest.NewRecorder()
		h.Create(w, req, httprouter.Params{})
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	h := newTestHandler(&mockArticleService{})

	req := httptest.NewRequest(http.MethodGet, basePath+"/65f1c0ffee00000000000001", nil)
	w := httptest.NewRecorder()
	h.GetByID(w, req, httprouter.Params{{Key: "id", Value: "65f1c0ffee00000000000001"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestList_QueryParameters(t *testing.T) {
	var received model.ArticleFilter
	h := newTestHandler(&mockArticleService{
		listFunc: func(ctx context.Context, filter model.ArticleFilter) ([]*model.ArticleDTO, int64, error) {
			received = filter
			return []*model.ArticleDTO{{ID: "a"}}, 45, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, basePath+"?page=2&pageSize=10&state=1&columnId=65f1c0ffee00000000000001&search=go&includeDeleted=true", nil)
	w := httptest.NewRecorder()
	h.List(w, req, httprouter.Params{})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, received.Page.Number)
	assert.Equal(t, 10, received.Page.Size)
	require.NotNil(t, received.State)
	assert.True(t, *received.State)
	assert.Equal(t, "65f1c0ffee00000000000001", received.ColumnID)
	assert.Equal(t, "go", received.Search)
	assert.True(t, received.IncludeDeleted)

	var body struct {
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int64 `json:"totalPages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(45), body.Meta.Total)
	assert.Equal(t, int64(5), body.Meta.TotalPages)
}

func TestList_InvalidQueryParameters(t *testing.T) {
	called := false
	h := newTestHandler(&mockArticleService{
		listFunc: func(ctx context.Context, filter model.ArticleFilter) ([]*model.ArticleDTO, int64, error) {
			called = true
			return nil, 0, nil
		},
	})

	tests := []struct {
		name  string
		query string
	}{
		{"page zero", "?page=0"},
		{"page size too large", "?pageSize=500"},
		{"state out of domain", "?state=2"},
		{"state label", "?state=published"},
		{"bad column id", "?columnId=42"},
		{"bad includeDeleted", "?includeDeleted=maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, basePath+tt.query, nil)
			w := httptest.NewRecorder()
			h.List(w, req, httprouter.Params{})
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	assert.False(t, called)
}

func TestDelete_HardFlag(t *testing.T) {
	var gotHard bool
	h := newTestHandler(&mockArticleService{
		deleteFunc: func(ctx context.Context, id string, hard bool) (*model.ArticleDTO, error) {
			gotHard = hard
			if hard {
				return nil, nil
			}
			return &model.ArticleDTO{ID: id}, nil
		},
	})
	params := httprouter.Params{{Key: "id", Value: "65f1c0ffee00000000000001"}}

	req := httptest.NewRequest(http.MethodDelete, basePath+"/65f1c0ffee00000000000001?hard=true", nil)
	w := httptest.NewRecorder()
	h.Delete(w, req, params)
	assert.True(t, gotHard)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	req = httptest.NewRequest(http.MethodDelete, basePath+"/65f1c0ffee00000000000001", nil)
	w = httptest.NewRecorder()
	h.Delete(w, req, params)
	assert.False(t, gotHard)
	assert.Contains(t, w.Body.String(), `"id":"65f1c0ffee00000000000001"`)

	req = httptest.NewRequest(http.MethodDelete, basePath+"/65f1c0ffee00000000000001?hard=perhaps", nil)
	w = httptest.NewRecorder()
	h.Delete(w, req, params)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRoutes(t *testing.T) {
	router := httprouter.New()
	newTestHandler(&mockArticleService{}).RegisterRoutes(router)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		handle, _, _ := router.Lookup(method, basePath+"/65f1c0ffee00000000000001")
		assert.NotNil(t, handle, method)
	}
	handle, _, _ := router.Lookup(http.MethodPost, basePath)
	assert.NotNil(t, handle)
}
