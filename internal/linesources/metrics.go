package linesources

import (
	"log-analyzer/internal/shared/metrics"
)

var (
	metricSourceLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "lines_total",
		},
		[]string{"result"},
	)

	metricLinesParsed     = metricSourceLinesTotal.WithLabelValues("parsed")
	metricLinesUnparsable = metricSourceLinesTotal.WithLabelValues("unparsable")
)
