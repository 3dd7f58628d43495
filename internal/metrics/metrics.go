package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
)

// FormMetrics exposes counters/gauges for the booking page.
type FormMetrics struct {
	submissionsTotal *prometheus.CounterVec
	fieldErrorsTotal *prometheus.CounterVec
	activeSessions   prometheus.Gauge
	requestsTotal    *prometheus.CounterVec
	requestLatency   *prometheus.HistogramVec
}

func NewFormMetrics(reg prometheus.Registerer) *FormMetrics {
	m := &FormMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "toothfairy",
			Subsystem: "appointment",
			Name:      "submissions_total",
			Help:      "Appointment form submissions by validation outcome",
		}, []string{"outcome"}),
		fieldErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "toothfairy",
			Subsystem: "appointment",
			Name:      "field_errors_total",
			Help:      "Validation failures per form field",
		}, []string{"field"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "toothfairy",
			Subsystem: "session",
			Name:      "active",
			Help:      "Page sessions holding a live form controller",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "toothfairy",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "toothfairy",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.submissionsTotal,
		m.fieldErrorsTotal,
		m.activeSessions,
		m.requestsTotal,
		m.requestLatency,
	)
	return m
}

// ObserveSubmission counts one validation pass and each field it rejected.
func (m *FormMetrics) ObserveSubmission(result appointment.ValidationResult) {
	if m == nil {
		return
	}
	if result.Valid() {
		m.submissionsTotal.WithLabelValues("accepted").Inc()
		return
	}
	m.submissionsTotal.WithLabelValues("rejected").Inc()
	for f := range result {
		m.fieldErrorsTotal.WithLabelValues(f.String()).Inc()
	}
}

func (m *FormMetrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

func (m *FormMetrics) ObserveRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(method, route).Observe(seconds)
}
