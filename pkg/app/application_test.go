package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"mocms/pkg/config"
	"mocms/pkg/events/eventstest"
	httputil "mocms/pkg/http"
	"mocms/pkg/logger"
	"mocms/pkg/middleware"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	return f.err
}

type echoHandler struct{}

func (echoHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/echo", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		_ = httputil.WriteSuccess(w, map[string]string{"request_id": middleware.RequestIDFrom(r.Context())})
	})
	router.POST("/api/v1/echo", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		_ = httputil.WriteCreated(w, map[string]bool{"ok": true})
	})
}

func testConfig() *config.Config {
	return &config.Config{
		Port:              "0",
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    5 * time.Second,
		IdempotencyTTL:    time.Minute,
		MaxRequestSize:    1 << 20,
		ShutdownTimeout:   time.Second,
		Log:               logger.Discard(),
	}
}

func newTestApp(t *testing.T, cfg *config.Config, db Pinger) (*Application, *eventstest.Recorder) {
	t.Helper()

	publisher := &eventstest.Recorder{}
	a := NewApplication()
	a.SetApp(cfg, db, publisher, echoHandler{})
	t.Cleanup(func() {
		a.idempotencyStore.Stop()
		a.rateLimiter.Stop()
	})
	return a, publisher
}

func serve(a *Application, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthAndReady(t *testing.T) {
	a, _ := newTestApp(t, testConfig(), fakePinger{})

	w := serve(a, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = serve(a, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready","database":"ok"}`, w.Body.String())
}

func TestReady_DatabaseDown(t *testing.T) {
	a, _ := newTestApp(t, testConfig(), fakePinger{err: errors.New("no reachable servers")})

	w := serve(a, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable","database":"error"}`, w.Body.String())
}

func TestResourceRoutesGoThroughChain(t *testing.T) {
	a, _ := newTestApp(t, testConfig(), fakePinger{})

	w := serve(a, httptest.NewRequest(http.MethodGet, "/api/v1/echo", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/echo", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	w = serve(a, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	w = serve(a, httptest.NewRequest(http.MethodGet, "/api/v1/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	a, _ := newTestApp(t, testConfig(), fakePinger{})

	serve(a, httptest.NewRequest(http.MethodGet, "/api/v1/echo", nil))

	w := serve(a, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestSignatureRequiredWhenSecretSet(t *testing.T) {
	cfg := testConfig()
	cfg.SigningSecret = "s3cret"
	a, _ := newTestApp(t, cfg, fakePinger{})

	body := `{"title":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusUnauthorized, serve(a, req).Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SignatureHeader, middleware.Sign([]byte(body), cfg.SigningSecret))
	assert.Equal(t, http.StatusCreated, serve(a, req).Code)

	// Health stays outside the signed chain.
	assert.Equal(t, http.StatusOK, serve(a, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
}

func TestGracefulShutdownClosesPublisher(t *testing.T) {
	a, publisher := newTestApp(t, testConfig(), fakePinger{})

	a.gracefulShutdown()
	assert.True(t, publisher.Closed())
}
