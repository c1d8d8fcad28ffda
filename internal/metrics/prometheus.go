package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "profiles"

// Prometheus holds the prometheus collectors.
type Prometheus struct {
	Representations *prometheus.CounterVec
	Clusterings     *prometheus.CounterVec
	Runs            *prometheus.CounterVec
	Duration        *prometheus.HistogramVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Representations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "representations_total",
				Help:      "number of series transformed per representation method",
			}, []string{"method"}),
		Clusterings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "clusterings_total",
				Help:      "number of clusterings per validity index",
			}, []string{"index"}),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "number of pipeline runs per method and status",
			}, []string{"method", "status"}),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "step_duration_seconds",
				Help:      "duration of the pipeline steps",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
			}, []string{"step"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Representations, p.Clusterings, p.Runs, p.Duration}
}
