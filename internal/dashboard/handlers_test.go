package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMetrics struct {
	metrics Metrics
	err     error
}

func (f fakeMetrics) Metrics(ctx context.Context) (Metrics, error) {
	return f.metrics, f.err
}

func newTestRouter(reader metricsReader) http.Handler {
	r := chi.NewRouter()
	NewHandler(reader, zap.NewNop()).Register(r)
	return r
}

func TestHandleMetrics(t *testing.T) {
	want := buildMetrics(solvedQuestions(2), nil, 2, 1, 5)
	router := newTestRouter(fakeMetrics{metrics: want})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"solvedQuestionsCount", "topicsCount", "solvedQuestions", "progressData", "completedTopicsCount", "questionsCount"} {
		assert.Contains(t, raw, key)
	}

	var got Metrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(5), got.QuestionsCount)
	assert.Equal(t, "Unsolved", got.ProgressData[1].Category)
	assert.Equal(t, int64(3), got.ProgressData[1].Value)
}

func TestHandleMetricsFailure(t *testing.T) {
	router := newTestRouter(fakeMetrics{err: errors.New("pq: too many connections")})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Error retrieving dashboard metrics"}`, rec.Body.String())
}
