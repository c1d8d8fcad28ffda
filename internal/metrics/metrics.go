package metrics

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	StepRepresentation = "representation"
	StepClustering     = "clustering"
	StepRender         = "render"
)

// Observer is the process wide metrics collector.
var Observer = NewMetrics()

// Metrics tracks the pipeline activity on its own prometheus registry.
type Metrics struct {
	mutex      *sync.RWMutex
	registry   *prometheus.Registry
	prometheus Prometheus
	runs       map[string]int
}

// NewMetrics creates a new metrics collector with a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	p := NewPrometheusMetrics()
	registry.MustRegister(p.collectors()...)
	return &Metrics{
		mutex:      new(sync.RWMutex),
		registry:   registry,
		prometheus: p,
		runs:       make(map[string]int),
	}
}

// Representation records the transformation of rows series with the given method.
func (m *Metrics) Representation(method string, rows int, d time.Duration) {
	m.prometheus.Representations.WithLabelValues(method).Add(float64(rows))
	m.prometheus.Duration.WithLabelValues(StepRepresentation).Observe(d.Seconds())
}

// Clustering records a clustering scored with the given index.
func (m *Metrics) Clustering(index string, k int, d time.Duration) {
	m.prometheus.Clusterings.WithLabelValues(index).Inc()
	m.prometheus.Duration.WithLabelValues(StepClustering).Observe(d.Seconds())
}

// Render records the rendering of the charts.
func (m *Metrics) Render(d time.Duration) {
	m.prometheus.Duration.WithLabelValues(StepRender).Observe(d.Seconds())
}

// Run records the completion of a pipeline run.
func (m *Metrics) Run(method string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.prometheus.Runs.WithLabelValues(method, status).Inc()
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.runs[status]++
}

// Runs returns the number of runs with the given status.
func (m *Metrics) Runs(status string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.runs[status]
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Serve exposes the metrics on the given address in the background.
func (m *Metrics) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
		}
	}()
	log.Info().Str("addr", addr).Msg("serving metrics")
	return srv
}
