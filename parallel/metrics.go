// SPDX-License-Identifier: MIT

package parallel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcome labels.
const (
	statusOK      = "ok"
	statusFailed  = "failed"
	statusInvalid = "invalid"
)

var (
	// runsTotal counts finished runs by outcome.
	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "antcover",
			Subsystem: "parallel",
			Name:      "runs_total",
			Help:      "Colony runs by outcome (ok, failed, invalid).",
		},
		[]string{"status"},
	)

	// runDuration observes wall time per run.
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "antcover",
			Subsystem: "parallel",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a single colony run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		},
	)

	// solvesTotal counts Solve calls by outcome.
	solvesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "antcover",
			Subsystem: "parallel",
			Name:      "solves_total",
			Help:      "Solve calls by outcome (ok, failed, invalid).",
		},
		[]string{"status"},
	)

	// bestCost is the cost of the last winning cover.
	bestCost = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "antcover",
			Subsystem: "parallel",
			Name:      "best_cost",
			Help:      "Cost of the most recent winning cover.",
		},
	)
)
