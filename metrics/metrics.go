// Package metrics exposes Prometheus collectors for rcgraph searches.
//
// Collectors are registered through promauto on the default registry at
// import time; a process that serves promhttp picks them up with no
// further wiring. Observation is purely additive — it never affects
// search results.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchesTotal counts completed searches, labeled by outcome
	// ("found" or "not_found").
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rcgraph_searches_total",
			Help: "Total number of A* searches executed",
		},
		[]string{"outcome"},
	)

	// SearchDuration measures wall-clock search time.
	// Buckets span sub-millisecond in-memory runs up to pathological
	// near-capacity graphs.
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rcgraph_search_duration_seconds",
			Help:    "Duration of A* searches in seconds",
			Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// NodesExplored measures how many nodes each search finalized.
	NodesExplored = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rcgraph_search_nodes_explored",
			Help:    "Nodes finalized per A* search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		},
	)

	// PeakOpenSet measures the peak frontier size per search.
	PeakOpenSet = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rcgraph_search_peak_open_set",
			Help:    "Peak open-set size per A* search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		},
	)
)

// ObserveSearch records one completed search run.
func ObserveSearch(d time.Duration, explored, peakOpen int, found bool) {
	outcome := "not_found"
	if found {
		outcome = "found"
	}
	SearchesTotal.WithLabelValues(outcome).Inc()
	SearchDuration.Observe(d.Seconds())
	NodesExplored.Observe(float64(explored))
	PeakOpenSet.Observe(float64(peakOpen))
}
