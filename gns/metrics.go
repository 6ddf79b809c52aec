package gns

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// Prometheus Metrics for Cycle Search
// =============================================================================

var (
	// pointsVisited counts lattice points marked during cycle searches.
	pointsVisited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gns",
		Subsystem: "cycles",
		Name:      "points_visited_total",
		Help:      "Lattice points visited by cycle searches",
	})

	// pathsAbandoned counts search paths that left the bounding box.
	pathsAbandoned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gns",
		Subsystem: "cycles",
		Name:      "paths_abandoned_total",
		Help:      "Search paths abandoned after leaving the bounding box",
	})

	// cyclesFound counts discovered cycles.
	// Labels: kind (zero, nontrivial)
	cyclesFound = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gns",
		Subsystem: "cycles",
		Name:      "found_total",
		Help:      "Cycles discovered by cycle searches",
	}, []string{"kind"})

	// searchDuration measures complete cycle searches.
	// Labels: status (ok, canceled, error)
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gns",
		Subsystem: "cycles",
		Name:      "search_duration_seconds",
		Help:      "Duration of cycle searches in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 12),
	}, []string{"status"})

	// boxVolume records the volume of the most recent bounding box.
	boxVolume = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "gns",
		Subsystem: "cycles",
		Name:      "box_volume",
		Help:      "Number of lattice points in the most recent bounding box",
	})
)
