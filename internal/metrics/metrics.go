// Package metrics declares the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "edugame"

var (
	ScrapesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scrapes_total",
		Help:      "Scrape attempts by outcome.",
	}, []string{"outcome"})

	PortalRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "portal_requests_total",
		Help:      "Requests sent to the academic portal by step.",
	}, []string{"step"})

	PortalFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "portal_section_fallbacks_total",
		Help:      "Pages refetched from section 2 after a permission refusal.",
	}, []string{"resource"})

	GamesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "games_total",
		Help:      "Mini-game rounds by game and outcome.",
	}, []string{"game", "outcome"})

	CoinsWageredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "coins_wagered_total",
		Help:      "Coins bet on mini-games.",
	}, []string{"game"})

	PurchasesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Shop purchases by item and outcome.",
	}, []string{"item", "outcome"})

	RegisteredStudents = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "registered_students",
		Help:      "Students currently held in the registry.",
	})

	LedgerWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_write_failures_total",
		Help:      "Ledger entries that could not be stored or queued.",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
