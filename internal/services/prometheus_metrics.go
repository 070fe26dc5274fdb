package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	adviceRequests     *prometheus.CounterVec
	adviceDuration     prometheus.Histogram
	queryRoutes        *prometheus.CounterVec
	snapshotCategories *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the advice metrics with reg. A nil reg uses the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		adviceRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advice_requests_total",
				Help: "Total number of advice requests by kind and outcome",
			},
			[]string{"kind", "status"},
		),
		adviceDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "advice_generation_duration_milliseconds",
				Help:    "Advice generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
			},
		),
		queryRoutes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advice_query_routes_total",
				Help: "Total number of free-text queries by resolved topic",
			},
			[]string{"topic"},
		),
		snapshotCategories: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "advice_snapshot_categories",
				Help:    "Number of spending categories in snapshots submitted for advice",
				Buckets: prometheus.LinearBuckets(0, 2, 10),
			},
			[]string{"kind"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricAdviceGenerated:
		m.adviceRequests.WithLabelValues(tags["kind"], tags["status"]).Inc()
	case MetricAdviceQueryRouted:
		if topic := tags["topic"]; topic != "" {
			m.queryRoutes.WithLabelValues(topic).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricAdviceGeneration:
		m.adviceDuration.Observe(float64(duration.Microseconds()) / 1000)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricSnapshotCategories:
		m.snapshotCategories.WithLabelValues(tags["kind"]).Observe(value)
	}
}
