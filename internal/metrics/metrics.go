// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package metrics instruments the import orchestrator and batch
// runner with prometheus/client_golang. Nothing in this repository
// serves the /metrics HTTP endpoint; that belongs to the external
// shell (spec §4.12).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ImportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oldworldimport_imports_total",
			Help: "Total number of snapshot imports by outcome",
		},
		[]string{"outcome"}, // imported, skipped, failed
	)

	PhaseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oldworldimport_phase_duration_seconds",
			Help:    "Duration of each import phase",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"phase"},
	)

	ImportsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "oldworldimport_imports_in_flight",
			Help: "Number of snapshot imports currently executing",
		},
	)

	BatchFilesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oldworldimport_batch_files_total",
			Help: "Total number of files processed by the batch runner, by outcome",
		},
		[]string{"outcome"},
	)

	RowsInserted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oldworldimport_rows_inserted_total",
			Help: "Total number of rows inserted by entity family",
		},
		[]string{"family"},
	)
)

func init() {
	prometheus.MustRegister(ImportsTotal)
	prometheus.MustRegister(PhaseDuration)
	prometheus.MustRegister(ImportsInFlight)
	prometheus.MustRegister(BatchFilesTotal)
	prometheus.MustRegister(RowsInserted)
}
