package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mocms/pkg/logger"
	"mocms/pkg/middleware"
)

func TestResourceClient_Routes(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Method+" "+r.URL.RequestURI())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	c := NewResourceClient(srv.URL, "column-requests")

	_, err := c.Create(map[string]any{"title": "x"})
	require.NoError(t, err)
	_, err = c.List(2, 10, url.Values{"state": {"approved"}})
	require.NoError(t, err)
	_, err = c.GetByID("abc")
	require.NoError(t, err)
	_, err = c.Update("abc", map[string]any{"title": "y"})
	require.NoError(t, err)
	_, err = c.Patch("abc", map[string]any{"title": "z"})
	require.NoError(t, err)
	_, err = c.Delete("abc")
	require.NoError(t, err)
	_, err = c.HardDelete("abc")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"POST /api/v1/column-requests",
		"GET /api/v1/column-requests?page=2&pageSize=10&state=approved",
		"GET /api/v1/column-requests/abc",
		"PUT /api/v1/column-requests/abc",
		"PATCH /api/v1/column-requests/abc",
		"DELETE /api/v1/column-requests/abc",
		"DELETE /api/v1/column-requests/abc?hard=true",
	}, got)
}

func TestHttpClient_SendsJSONAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "key-1", r.Header.Get(IdempotencyKeyHeader))
		assert.Empty(t, r.Header.Get(middleware.SignatureHeader))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body["title"])

		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid article payload","code":"VALIDATION_ERROR"}`))
	}))
	defer srv.Close()

	c := NewHttpClient(srv.URL)
	resp, err := c.POSTIdempotent("/api/v1/articles", map[string]string{"title": "hello"}, "key-1")
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid article payload", GetErrorMessage(resp))
}

func TestHttpClient_SignsWriteRequests(t *testing.T) {
	const secret = "s3cret"
	log := logger.New(logger.Config{Level: "error", Format: logger.JSON})

	handler := middleware.RequestSignatureVerification(secret, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	srv := httptest.NewServer(handler)
	defer srv.Close()

	c := NewHttpClient(srv.URL)
	resp, err := c.POST("/api/v1/tags", map[string]string{"title": "go"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	c.SigningSecret = secret
	resp, err = c.POST("/api/v1/tags", map[string]string{"title": "go"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = c.DELETE("/api/v1/tags/abc")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestWaitForReady(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ready", r.URL.Path)
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, NewHttpClient(srv.URL).WaitForReady(context.Background(), 3*time.Second))
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestWaitForReady_TimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	assert.Error(t, NewHttpClient(srv.URL).WaitForReady(context.Background(), 700*time.Millisecond))
}
