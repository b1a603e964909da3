package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	matchTotal      *prometheus.CounterVec
	persistTotal    *prometheus.CounterVec
	signalTotal     prometheus.Counter
}

// NewMetricsService registers the core collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	matchTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "teacher_matches_total",
		Help: "Teacher resolutions by tier",
	}, []string{"tier"})

	persistTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "learning_persists_total",
		Help: "Learning collection snapshot writes by outcome",
	}, []string{"outcome"})

	signalTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "learning_change_signals_total",
		Help: "Collection change signals published",
	})

	registry.MustRegister(requestDuration, requestTotal, matchTotal, persistTotal, signalTotal)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		matchTotal:      matchTotal,
		persistTotal:    persistTotal,
		signalTotal:     signalTotal,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records duration and count for a completed request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := prometheus.Labels{"method": method, "path": path, "status": strconv.Itoa(status)}
	s.requestDuration.With(labels).Observe(duration.Seconds())
	s.requestTotal.With(labels).Inc()
}

// RecordMatch counts a teacher resolution on the given tier.
func (s *MetricsService) RecordMatch(tier MatchTier) {
	s.matchTotal.WithLabelValues(string(tier)).Inc()
}

// RecordPersist counts a snapshot write attempt.
func (s *MetricsService) RecordPersist(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.persistTotal.WithLabelValues(outcome).Inc()
}

// RecordSignal counts a published change signal.
func (s *MetricsService) RecordSignal() {
	s.signalTotal.Inc()
}
