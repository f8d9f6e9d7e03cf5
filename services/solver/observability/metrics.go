// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides Prometheus metrics for the solver
// service. Metrics are exposed on /metrics; use with Prometheus +
// Grafana for dashboards.
//
// All operations are thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "evosat"
	solverSubsystem  = "solver"
)

// SolverMetrics holds the Prometheus metrics for solve operations.
// Initialize once at startup via InitMetrics.
type SolverMetrics struct {
	// SolvesTotal counts solve runs.
	// Labels: transport (http, websocket), state (converged, exhausted,
	// cancelled, error)
	SolvesTotal *prometheus.CounterVec

	// SolveDurationSeconds measures wall-clock solve duration.
	// Labels: transport, state
	SolveDurationSeconds *prometheus.HistogramVec

	// GenerationsPerSolve measures how many generations a run took.
	GenerationsPerSolve prometheus.Histogram

	// ActiveSolves tracks solves currently running.
	ActiveSolves prometheus.Gauge

	// ProgressFramesTotal counts progress frames streamed to clients.
	ProgressFramesTotal prometheus.Counter
}

// DefaultMetrics is the singleton instance, set by InitMetrics.
var DefaultMetrics *SolverMetrics

// InitMetrics creates and registers all solver metrics. Call once at
// startup.
func InitMetrics() *SolverMetrics {
	m := &SolverMetrics{
		SolvesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: solverSubsystem,
			Name:      "solves_total",
			Help:      "Number of solve runs by transport and terminal state.",
		}, []string{"transport", "state"}),
		SolveDurationSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: solverSubsystem,
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of solve runs.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
		}, []string{"transport", "state"}),
		GenerationsPerSolve: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: solverSubsystem,
			Name:      "generations_per_solve",
			Help:      "Generations run before a solve terminated.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
		ActiveSolves: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: solverSubsystem,
			Name:      "active_solves",
			Help:      "Solve runs currently in progress.",
		}),
		ProgressFramesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: solverSubsystem,
			Name:      "progress_frames_total",
			Help:      "Progress frames streamed to websocket clients.",
		}),
	}
	DefaultMetrics = m
	return m
}

// RecordSolve records a finished solve run on all relevant metrics.
func (m *SolverMetrics) RecordSolve(transport, state string, seconds float64, generations int) {
	if m == nil {
		return
	}
	m.SolvesTotal.WithLabelValues(transport, state).Inc()
	m.SolveDurationSeconds.WithLabelValues(transport, state).Observe(seconds)
	m.GenerationsPerSolve.Observe(float64(generations))
}
