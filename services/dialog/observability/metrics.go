// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package observability provides Prometheus metrics for the dialog
// service.
//
// # Description
//
// Metrics cover session lifecycle, turn throughput by dialog act, and
// act-classifier latency. They are exposed on the server's /metrics
// endpoint; the interactive CLI does not initialize them.
//
// # Thread Safety
//
// All metric operations are thread-safe via Prometheus's internal
// locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const metricsNamespace = "tabletalk"

// Subsystem for dialog metrics
const dialogSubsystem = "dialog"

// DialogMetrics holds all Prometheus metrics for dialog operations.
//
// # Fields
//
//   - SessionsStartedTotal: Counter of sessions created.
//   - SessionsCompletedTotal: Counter of sessions reaching a terminal
//     state, by outcome (bye, thankyou, handoff, deleted).
//   - ActiveSessions: Gauge of sessions currently held in memory.
//   - TurnsTotal: Counter of processed turns by classified act.
//   - ClassifierLatencySeconds: Histogram of act-classifier call
//     latency.
type DialogMetrics struct {
	SessionsStartedTotal   prometheus.Counter
	SessionsCompletedTotal *prometheus.CounterVec
	ActiveSessions         prometheus.Gauge

	// TurnsTotal counts turns by act. Labels: act.
	TurnsTotal *prometheus.CounterVec

	// ClassifierLatencySeconds measures one Classify call.
	ClassifierLatencySeconds prometheus.Histogram
}

// DefaultMetrics is the singleton instance, initialized by
// InitMetrics(). Nil until then; recording helpers are no-ops on a
// nil singleton so library code can record unconditionally.
var DefaultMetrics *DialogMetrics

// InitMetrics initializes and registers the default metrics instance.
//
// # Limitations
//
//   - Panics if called twice (duplicate registration).
func InitMetrics() *DialogMetrics {
	DefaultMetrics = &DialogMetrics{
		SessionsStartedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: dialogSubsystem,
			Name:      "sessions_started_total",
			Help:      "Total number of dialog sessions created",
		}),

		SessionsCompletedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: dialogSubsystem,
				Name:      "sessions_completed_total",
				Help:      "Total number of dialog sessions reaching a terminal state, by outcome",
			},
			[]string{"outcome"},
		),

		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: dialogSubsystem,
			Name:      "active_sessions",
			Help:      "Number of dialog sessions currently in memory",
		}),

		TurnsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: dialogSubsystem,
				Name:      "turns_total",
				Help:      "Total number of processed dialog turns by classified act",
			},
			[]string{"act"},
		),

		ClassifierLatencySeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: dialogSubsystem,
			Name:      "classifier_latency_seconds",
			Help:      "Act classifier call latency in seconds",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 2.5, 5.0},
		}),
	}
	return DefaultMetrics
}

// RecordTurn counts one processed turn. Safe before InitMetrics.
func RecordTurn(act string) {
	if DefaultMetrics != nil {
		DefaultMetrics.TurnsTotal.WithLabelValues(act).Inc()
	}
}

// RecordClassifierLatency observes one Classify call. Safe before
// InitMetrics.
func RecordClassifierLatency(seconds float64) {
	if DefaultMetrics != nil {
		DefaultMetrics.ClassifierLatencySeconds.Observe(seconds)
	}
}
