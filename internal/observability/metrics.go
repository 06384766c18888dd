package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects Prometheus metrics for the dashboard.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	snapshotsTotal  prometheus.Counter
	campaigns       prometheus.Gauge
	activeCampaigns prometheus.Gauge
}

// NewMetrics initialises a private registry with the dashboard metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campaign_dashboard_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "campaign_dashboard_http_request_duration_seconds",
		Help:    "HTTP request duration by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	snapshots := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campaign_dashboard_snapshots_total",
		Help: "Campaign snapshots read from the source.",
	})
	campaigns := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "campaign_dashboard_campaigns",
		Help: "Campaigns in the most recent snapshot.",
	})
	active := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "campaign_dashboard_active_campaigns",
		Help: "Active campaigns in the most recent snapshot.",
	})
	registry.MustRegister(requests, duration, snapshots, campaigns, active)
	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		snapshotsTotal:  snapshots,
		campaigns:       campaigns,
		activeCampaigns: active,
	}
}

// Handler returns the http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveSnapshot records the size of a campaign snapshot.
func (m *Metrics) ObserveSnapshot(campaigns, active int) {
	if m == nil {
		return
	}
	m.snapshotsTotal.Inc()
	m.campaigns.Set(float64(campaigns))
	m.activeCampaigns.Set(float64(active))
}

// Middleware records request count and latency per route.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)
		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
