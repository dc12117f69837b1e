package reports

import (
	"math"
	"slices"
	"sort"

	"log-analyzer/internal/models"

	"github.com/samber/lo"
)

type ReportBuilder interface {
	// Build derives one row per URL, orders rows by time_sum descending (URL ascending
	// on ties) and keeps at most size rows. agg is not modified, so building twice
	// yields the same report. An empty aggregation yields an empty report.
	Build(agg *models.Aggregation, size int) models.Report
}

type reportBuilder struct{}

func NewReportBuilder() ReportBuilder {
	return &reportBuilder{}
}

func (b *reportBuilder) Build(agg *models.Aggregation, size int) models.Report {
	if agg == nil || agg.IsEmpty() || size <= 0 {
		return models.Report{}
	}

	totalCount := float64(agg.TotalCount)
	totalTime := agg.TotalTimeSum

	rows := lo.MapToSlice(agg.ByURL, func(url string, stats *models.URLStats) models.ReportRow {
		row := models.ReportRow{
			URL:       url,
			Count:     stats.Count,
			CountPerc: round3(float64(stats.Count) * 100 / totalCount),
			TimeSum:   round3(stats.TimeSum),
			// normalized by the grand total count, not by the URL's own count
			TimeAvg: round3(stats.TimeSum * 100 / totalCount),
			TimeMax: stats.TimeMax,
			TimeMed: lowerMedian(stats.Times),
		}
		// every record may have taken 0s
		if totalTime > 0 {
			row.TimePerc = round3(stats.TimeSum * 100 / totalTime)
		}
		return row
	})

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TimeSum != rows[j].TimeSum {
			return rows[i].TimeSum > rows[j].TimeSum
		}
		return rows[i].URL < rows[j].URL
	})

	if len(rows) > size {
		rows = rows[:size]
	}
	return rows
}

// lowerMedian returns the element at index (n-1)/2 of the ascending order of times.
func lowerMedian(times []float64) float64 {
	if len(times) == 0 {
		return 0
	}
	sorted := slices.Clone(times)
	slices.Sort(sorted)
	return sorted[(len(sorted)-1)/2]
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
