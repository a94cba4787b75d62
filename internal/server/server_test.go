package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tracker_api/internal/config"
)

type stubRegistrar struct{}

func (stubRegistrar) Register(r chi.Router) {
	r.Get("/topics", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
}

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{RequestTimeout: 5 * time.Second},
		CORS:   config.CORSConfig{AllowedOrigins: "http://localhost:5173"},
	}
}

func TestRouterMountsUnderAPI(t *testing.T) {
	router := NewRouter(testConfig(), zap.NewNop(), stubRegistrar{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/topics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/topics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthAndBanner(t *testing.T) {
	router := NewRouter(testConfig(), zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestCORSPreflight(t *testing.T) {
	router := NewRouter(testConfig(), zap.NewNop(), stubRegistrar{})

	req := httptest.NewRequest(http.MethodOptions, "/api/topics", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovererAndRequestLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	router := NewRouter(testConfig(), zap.New(core), stubRegistrar{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entries := logs.FilterMessage("http request").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, zap.ErrorLevel, entries[0].Level)
		assert.Equal(t, int64(http.StatusInternalServerError), entries[0].ContextMap()["status"])
		assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
	}
}
