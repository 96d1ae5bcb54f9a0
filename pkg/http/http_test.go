package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "mocms/pkg/errors"
)

func TestExtractPage(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Page
		wantErr bool
	}{
		{"defaults", "", Page{Number: 1, Size: 20}, false},
		{"explicit", "?page=3&pageSize=50", Page{Number: 3, Size: 50}, false},
		{"max size", "?pageSize=100", Page{Number: 1, Size: 100}, false},
		{"size above max", "?pageSize=101", Page{}, true},
		{"zero page", "?page=0", Page{}, true},
		{"not a number", "?page=abc", Page{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/articles"+tt.query, nil)
			got, err := ExtractPage(r)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, apperrors.AsAppError(err).StatusCode())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageSkip(t *testing.T) {
	assert.Equal(t, int64(0), Page{Number: 1, Size: 20}.Skip())
	assert.Equal(t, int64(40), Page{Number: 3, Size: 20}.Skip())
}

func TestNewPageMeta(t *testing.T) {
	assert.Equal(t, int64(1), NewPageMeta(Page{Number: 1, Size: 20}, 0).TotalPages)
	assert.Equal(t, int64(1), NewPageMeta(Page{Number: 1, Size: 20}, 20).TotalPages)
	assert.Equal(t, int64(2), NewPageMeta(Page{Number: 1, Size: 20}, 21).TotalPages)
	assert.Equal(t, int64(5), NewPageMeta(Page{Number: 2, Size: 10}, 45).TotalPages)
}

func TestQueryBool(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?includeDeleted=true&hard=nope", nil)

	v, err := QueryBool(r, "includeDeleted")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = QueryBool(r, "missing")
	require.NoError(t, err)
	assert.False(t, v)

	_, err = QueryBool(r, "hard")
	assert.Error(t, err)
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?category=2&bad=x", nil)

	v, err := QueryInt(r, "category")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, int64(2), *v)

	v, err = QueryInt(r, "missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = QueryInt(r, "bad")
	assert.Error(t, err)
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Title string `json:"title"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"hi"}`))
	require.NoError(t, DecodeJSON(r, &body))
	assert.Equal(t, "hi", body.Title)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
	err := DecodeJSON(r, &body)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.AsAppError(err).Code)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	err = DecodeJSON(r, &body)
	require.Error(t, err)
	assert.Equal(t, "Request body is required", apperrors.AsAppError(err).Message)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteError(rec, apperrors.NotFoundWithID("Article", "x")))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Article not found", body.Error)
	assert.Equal(t, apperrors.CodeNotFound, body.Code)

	rec = httptest.NewRecorder()
	require.NoError(t, WriteError(rec, errors.New("driver exploded")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "driver exploded")
}

func TestWritePaginated(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WritePaginated(rec, []string{"a"}, Page{Number: 1, Size: 1}, 3))

	assert.JSONEq(t, `{"data":["a"],"meta":{"page":1,"pageSize":1,"total":3,"totalPages":3}}`, rec.Body.String())
}

func TestWriteDeleted(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteDeleted(rec))
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}
