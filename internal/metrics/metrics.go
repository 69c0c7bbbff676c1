// Package metrics holds the Prometheus collectors for taxonomy loading and
// queries. They are registered with the default registry on import.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// QueriesTotal counts queries by operation and outcome
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordnet_queries_total",
			Help: "Total number of taxonomy queries processed",
		},
		[]string{"op", "status"},
	)

	// QueryDuration measures query latency. A single BFS pair over the
	// full noun graph runs in well under a millisecond.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordnet_query_duration_seconds",
			Help:    "Duration of taxonomy queries in seconds",
			Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"op"},
	)

	// SynsetsLoaded tracks the size of the loaded taxonomy
	SynsetsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wordnet_synsets_loaded",
			Help: "Number of synsets in the loaded taxonomy",
		},
	)

	// LoadDuration measures taxonomy loads, labeled by where records came from
	LoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordnet_load_duration_seconds",
			Help:    "Duration of taxonomy loads in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)
)

// ObserveQuery records one query outcome
func ObserveQuery(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	QueriesTotal.WithLabelValues(op, status).Inc()
	QueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
