package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "crisissync"

// Metrics собственный реестр сервиса. Реализует наблюдателей всех компонентов.
type Metrics struct {
	registry *prometheus.Registry

	submissions        *prometheus.CounterVec
	locationOutcomes   *prometheus.CounterVec
	feedSubscribers    prometheus.Gauge
	alertsRaised       *prometheus.CounterVec
	webhookDeliveries  *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpRequestSeconds *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "incident_submissions_total",
			Help:      "Incident submissions by channel and outcome.",
		}, []string{"channel", "outcome"}),
		locationOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_acquisitions_total",
			Help:      "Location acquisition results by outcome.",
		}, []string{"outcome"}),
		feedSubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "feed_subscribers",
			Help:      "Live feed subscribers attached to this instance.",
		}),
		alertsRaised: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_raised_total",
			Help:      "Viewer alerts raised by incident type.",
		}, []string{"type"}),
		webhookDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_deliveries_total",
			Help:      "Responder webhook deliveries by outcome.",
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpRequestSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		m.submissions,
		m.locationOutcomes,
		m.feedSubscribers,
		m.alertsRaised,
		m.webhookDeliveries,
		m.httpRequests,
		m.httpRequestSeconds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler отдает метрики в текстовом формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveSubmission(channel, outcome string) {
	m.submissions.WithLabelValues(channel, outcome).Inc()
}

func (m *Metrics) ObserveLocation(outcome string) {
	m.locationOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetFeedSubscribers(n int) {
	m.feedSubscribers.Set(float64(n))
}

func (m *Metrics) ObserveAlert(incidentType string) {
	m.alertsRaised.WithLabelValues(incidentType).Inc()
}

func (m *Metrics) ObserveWebhookDelivery(outcome string) {
	m.webhookDeliveries.WithLabelValues(outcome).Inc()
}

// GinMiddleware считает запросы по шаблону маршрута, а не по фактическому пути
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpRequestSeconds.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
