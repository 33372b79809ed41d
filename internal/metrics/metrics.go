// Package metrics содержит метрики Prometheus для клиента и фиктивного сервера Rewardful.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics хранит счётчики и гистограммы вызовов API.
type Metrics struct {
	gatherer prometheus.Gatherer

	// Клиент
	clientCalls    *prometheus.CounterVec
	clientDuration *prometheus.HistogramVec

	// Сервер
	serverRequests *prometheus.CounterVec
	serverDuration *prometheus.HistogramVec
}

// New создаёт метрики и регистрирует их в реестре reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,

		clientCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewardful_client_calls_total",
				Help: "Количество вызовов API Rewardful",
			},
			[]string{"alias", "status"}, // status: код ответа или error
		),

		clientDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rewardful_client_call_duration_seconds",
				Help:    "Длительность вызовов API Rewardful",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"alias"},
		),

		serverRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewardful_mock_requests_total",
				Help: "Количество запросов к фиктивному серверу",
			},
			[]string{"method", "route", "status"},
		),

		serverDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rewardful_mock_request_duration_seconds",
				Help:    "Время обработки запросов фиктивным сервером",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	reg.MustRegister(
		m.clientCalls,
		m.clientDuration,
		m.serverRequests,
		m.serverDuration,
	)

	return m
}

// ObserveCall учитывает вызов клиента. Подходит как наблюдатель rewardful.Client.
func (m *Metrics) ObserveCall(alias string, status int, elapsed time.Duration, err error) {
	label := strconv.Itoa(status)
	if status == 0 && err != nil {
		label = "error"
	}

	m.clientCalls.WithLabelValues(alias, label).Inc()
	m.clientDuration.WithLabelValues(alias).Observe(elapsed.Seconds())
}

// Middleware учитывает запросы к HTTP-серверу. Маршрут берётся из шаблона chi, чтобы идентификаторы не попадали в метки.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.serverRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.serverDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// WriteTextfile записывает текущие значения метрик в файл для textfile-коллектора node_exporter.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.gatherer)
}

// Handler отдаёт метрики в формате Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
