// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics provides Prometheus collectors for the Phoenix client.
//
// Metrics are grouped by concern: calls made to the blogging backend, server
// confirmed mutations, autosave activity, and the local gateway's own HTTP
// traffic. Collectors are registered on an explicit [prometheus.Registerer]
// so that every test can use a fresh registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "phoenix"

// # Outcome labels

const (
	OutcomeApplied    = "applied"
	OutcomeStale      = "stale"
	OutcomeRolledBack = "rolled_back"
	OutcomeKept       = "kept"
	OutcomeRedirected = "redirected"

	AutosaveSaved     = "saved"
	AutosaveFailed    = "failed"
	AutosaveRestored  = "restored"
	AutosaveDismissed = "dismissed"
	AutosavePurged    = "purged"
)

// Metrics bundles every collector the client records into.
type Metrics struct {
	// Backend calls
	APIRequestsTotal   *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec

	// Controllers
	MutationsTotal *prometheus.CounterVec
	AutosaveTotal  *prometheus.CounterVec
	SearchQueries  prometheus.Counter

	// Local gateway
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		APIRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "api",
				Name:      "requests_total",
				Help:      "Total number of backend calls by operation, method, and status",
			},
			[]string{"op", "method", "status"},
		),
		APIRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "api",
				Name:      "request_duration_seconds",
				Help:      "Backend call duration in seconds",
				Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"op", "method"},
		),
		MutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "mutation",
				Name:      "total",
				Help:      "Server-confirmed toggles by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		AutosaveTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "autosave",
				Name:      "events_total",
				Help:      "Autosave lifecycle events by result",
			},
			[]string{"result"},
		),
		SearchQueries: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "queries_total",
				Help:      "Debounced search queries released to the backend",
			},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "gateway",
				Name:      "requests_total",
				Help:      "Total number of gateway requests by method, route, and status code",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "gateway",
				Name:      "request_duration_seconds",
				Help:      "Gateway request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "gateway",
				Name:      "requests_in_flight",
				Help:      "Number of gateway requests currently being processed",
			},
		),
	}
}

// Discard returns collectors registered nowhere. Used when the caller does not
// expose metrics (one-shot CLI commands, tests that do not assert on them).
func Discard() *Metrics {
	return New(prometheus.NewRegistry())
}

// ObserveMutation records the outcome of one toggle.
func (m *Metrics) ObserveMutation(kind, outcome string) {
	if m == nil {
		return
	}
	m.MutationsTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveAutosave records one autosave lifecycle event.
func (m *Metrics) ObserveAutosave(result string) {
	if m == nil {
		return
	}
	m.AutosaveTotal.WithLabelValues(result).Inc()
}

// ObserveSearch records one query released by the debouncer.
func (m *Metrics) ObserveSearch() {
	if m == nil {
		return
	}
	m.SearchQueries.Inc()
}
