package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCall(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveCall("getAffiliatesId", http.StatusOK, 10*time.Millisecond, nil)
	m.ObserveCall("getAffiliatesId", http.StatusOK, 20*time.Millisecond, nil)
	m.ObserveCall("getAffiliatesId", 0, time.Millisecond, errors.New("connection refused"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.clientCalls.WithLabelValues("getAffiliatesId", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.clientCalls.WithLabelValues("getAffiliatesId", "error")))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	m := New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/affiliates/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Handle("/metrics", m.Handler())

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/affiliates/"+id, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.serverRequests.WithLabelValues(http.MethodGet, "/affiliates/{id}", "404")))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "rewardful_mock_requests_total")
}

func TestWriteTextfile(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveCall("getCampaigns", http.StatusUnauthorized, time.Millisecond, errors.New("unauthorized"))

	path := filepath.Join(t.TempDir(), "rewardful.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `rewardful_client_calls_total{alias="getCampaigns",status="401"} 1`)
}
