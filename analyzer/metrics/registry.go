// Package metrics carries the analyzer's own observability: prometheus
// instrumentation and a snapshot of the host the analysis runs on.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "perfbench"

var (
	// ParsesTotal counts parse calls by suite name.
	ParsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "parser",
		Name:      "parses_total",
		Help:      "Number of benchmark texts parsed, by suite name.",
	}, []string{"suite"})

	// ResultsParsed counts individual benchmark results extracted.
	ResultsParsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "parser",
		Name:      "results_total",
		Help:      "Number of benchmark results extracted, by suite name.",
	}, []string{"suite"})

	// AnalyzeDuration observes end-to-end Analyze latency.
	AnalyzeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "analysis",
		Name:      "duration_seconds",
		Help:      "Time spent analyzing one benchmark suite.",
		Buckets:   prometheus.DefBuckets,
	})

	// BottlenecksDetected counts flagged bottlenecks by severity.
	BottlenecksDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analysis",
		Name:      "bottlenecks_total",
		Help:      "Number of bottlenecks detected, by severity.",
	}, []string{"severity"})

	// HistorySize tracks the number of suites retained in history.
	HistorySize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "analysis",
		Name:      "history_size",
		Help:      "Number of benchmark suites retained in the run history.",
	})
)
