package aggregators

import (
	"log-analyzer/internal/shared/metrics"
)

var (
	// metricRecordsAggregatedTotal counts records folded into URL statistics across runs.
	metricRecordsAggregatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_total",
		},
	)

	// metricDistinctURLs is the number of distinct URLs seen by the latest pass.
	metricDistinctURLs = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "distinct_urls",
		},
	)
)
