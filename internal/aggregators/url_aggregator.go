package aggregators

import (
	"iter"

	"log-analyzer/internal/models"
)

type URLAggregator interface {
	// Aggregate reduces the record stream into per-URL statistics in a single pass.
	// The first stream error aborts the pass and is returned as is.
	Aggregate(records iter.Seq2[*models.RequestRecord, error]) (*models.Aggregation, error)
}

type urlAggregator struct{}

func NewURLAggregator() URLAggregator {
	return &urlAggregator{}
}

func (a *urlAggregator) Aggregate(records iter.Seq2[*models.RequestRecord, error]) (*models.Aggregation, error) {
	agg := models.NewAggregation()
	for record, err := range records {
		if err != nil {
			return nil, err
		}
		Observe(agg, record)
	}

	metricRecordsAggregatedTotal.Add(float64(agg.TotalCount))
	metricDistinctURLs.Set(float64(len(agg.ByURL)))
	return agg, nil
}

// Observe folds one record into agg. A URL's entry is created on first sight and
// never removed.
func Observe(agg *models.Aggregation, record *models.RequestRecord) {
	stats, exists := agg.ByURL[record.URL]
	if !exists {
		stats = models.NewURLStats(record.URL)
		agg.ByURL[record.URL] = stats
	}
	stats.Observe(record.ResponseTime)

	agg.TotalCount++
	agg.TotalTimeSum += record.ResponseTime
}
