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

type mockUserService struct {
	createFunc func(ctx context.Context, input *model.CreateUser) (*model.UserDTO, error)
	listFunc   func(ctx context.Context, filter model.UserFilter) ([]*model.UserDTO, int64, error)
}

func (m *mockUserService) Create(ctx context.Context, input *model.CreateUser) (*model.UserDTO, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, input)
	}
	return &model.UserDTO{}, nil
}

func (m *mockUserService) GetByID(ctx context.Context, id string) (*model.UserDTO, error) {
	return &model.UserDTO{ID: id}, nil
}

func (m *mockUserService) List(ctx context.Context, filter model.UserFilter) ([]*model.UserDTO, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return []*model.UserDTO{}, 0, nil
}

func (m *mockUserService) Update(ctx context.Context, id string, input *model.UpdateUser) (*model.UserDTO, error) {
	return &model.UserDTO{ID: id}, nil
}

func (m *mockUserService) Delete(ctx context.Context, id string, hard bool) (*model.UserDTO, error) {
	return &model.UserDTO{ID: id}, nil
}

func TestList_StateFilter(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"?state=active", 1},
		{"?state=disabled", 0},
		{"?state=pending", -1},
		{"?state=1", 1},
		{"?state=-1", -1},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var received model.UserFilter
			h := NewUserHandler(&mockUserService{
				listFunc: func(ctx context.Context, filter model.UserFilter) ([]*model.UserDTO, int64, error) {
					received = filter
					return []*model.UserDTO{}, 0, nil
				},
			}, logger.Discard())

			req := httptest.NewRequest(http.MethodGet, basePath+tt.query, nil)
			w := httptest.NewRecorder()
			h.List(w, req, httprouter.Params{})

			require.Equal(t, http.StatusOK, w.Code)
			require.NotNil(t, received.State)
			assert.Equal(t, tt.want, *received.State)
		})
	}
}

func TestList_RejectsUnknownState(t *testing.T) {
	h := NewUserHandler(&mockUserService{}, logger.Discard())

	for _, query := range []string{"?state=approved", "?state=2", "?state=true"} {
		req := httptest.NewRequest(http.MethodGet, basePath+query, nil)
		w := httptest.NewRecorder()
		h.List(w, req, httprouter.Params{})
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestList_EmailAndMobileNormalized(t *testing.T) {
	var received model.UserFilter
	h := NewUserHandler(&mockUserService{
		listFunc: func(ctx context.Context, filter model.UserFilter) ([]*model.UserDTO, int64, error) {
			received = filter
			return []*model.UserDTO{}, 0, nil
		},
	}, logger.Discard())

	req := httptest.NewRequest(http.MethodGet, basePath+"?email=Ada@Example.com&mobile=054-123-4567", nil)
	w := httptest.NewRecorder()
	h.List(w, req, httprouter.Params{})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ada@example.com", received.Email)
	assert.Equal(t, "+972541234567", received.Mobile)
	assert.Nil(t, received.State)
}

func TestCreate_ResponseHasNoPassword(t *testing.T) {
	h := NewUserHandler(&mockUserService{
		createFunc: func(ctx context.Context, input *model.CreateUser) (*model.UserDTO, error) {
			assert.Equal(t, "secret1", input.Password)
			assert.Equal(t, normalize.KindLabel, input.State.Kind())
			return &model.UserDTO{ID: "1", Email: input.Email, State: "active"}, nil
		},
	}, logger.Discard())

	body := `{"email":"ada@example.com","password":"secret1","nickname":"ada","state":"active"}`
	req := httptest.NewRequest(http.MethodPost, basePath, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req, httprouter.Params{})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), `"state":"active"`)
}
