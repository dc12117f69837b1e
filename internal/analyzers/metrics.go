package analyzers

import (
	"log-analyzer/internal/shared/metrics"
)

var (
	// metricAnalysisRunsTotal counts analysis runs by outcome; error_code is empty on success.
	metricAnalysisRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricAnalysisDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "duration_seconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		},
		[]string{metrics.FieldErrorCode},
	)
)
