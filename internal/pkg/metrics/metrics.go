// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ocarena"

// Game counters, incremented by the orchestrators.
var (
	CharactersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "characters_created_total",
		Help:      "Total number of characters created",
	})

	BattleRequestsSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "battle_requests_sent_total",
		Help:      "Total number of battle requests sent",
	})

	BattlesResolved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "battles_resolved_total",
		Help:      "Total number of battles resolved",
	})
)

// HTTP request instrumentation, recorded by the middleware.
var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by route, method, and status",
	}, []string{"route", "method", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"route", "method"})
)
