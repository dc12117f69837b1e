package reports

import (
	"fmt"
	"testing"

	"log-analyzer/internal/aggregators"
	"log-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_SingleURLScenario(t *testing.T) {
	t.Parallel()

	agg := aggregate(
		&models.RequestRecord{URL: "/a", ResponseTime: 0.5},
		&models.RequestRecord{URL: "/a", ResponseTime: 1.5},
	)

	report := NewReportBuilder().Build(agg, 10)

	expected := models.Report{
		{
			URL:       "/a",
			Count:     2,
			CountPerc: 100.0,
			TimeSum:   2.0,
			TimePerc:  100.0,
			TimeAvg:   100.0,
			TimeMax:   1.5,
			TimeMed:   0.5,
		},
	}
	assert.Equal(t, expected, report)
}

func TestBuild_MultipleURLs(t *testing.T) {
	t.Parallel()

	agg := aggregate(
		&models.RequestRecord{URL: "/fast", ResponseTime: 0.1},
		&models.RequestRecord{URL: "/slow", ResponseTime: 3.0},
		&models.RequestRecord{URL: "/fast", ResponseTime: 0.2},
		&models.RequestRecord{URL: "/slow", ResponseTime: 1.0},
		&models.RequestRecord{URL: "/slow", ResponseTime: 2.0},
		&models.RequestRecord{URL: "/mid", ResponseTime: 0.7},
	)

	report := NewReportBuilder().Build(agg, 10)

	require.Len(t, report, 3)
	assert.Equal(t, []string{"/slow", "/mid", "/fast"}, urls(report))

	slow := report[0]
	assert.Equal(t, int64(3), slow.Count)
	assert.Equal(t, 50.0, slow.CountPerc)
	assert.Equal(t, 6.0, slow.TimeSum)
	assert.Equal(t, 85.714, slow.TimePerc)
	assert.Equal(t, 100.0, slow.TimeAvg)
	assert.Equal(t, 3.0, slow.TimeMax)
	assert.Equal(t, 2.0, slow.TimeMed)

	fast := report[2]
	assert.Equal(t, 33.333, fast.CountPerc)
	assert.Equal(t, 0.3, fast.TimeSum)
	assert.Equal(t, 0.1, fast.TimeMed, "lower median for even counts")
	assert.Equal(t, 0.2, fast.TimeMax)
}

func TestBuild_TruncatesToReportSize(t *testing.T) {
	t.Parallel()

	var records []*models.RequestRecord
	for i := 1; i <= 20; i++ {
		records = append(records, &models.RequestRecord{URL: fmt.Sprintf("/u%02d", i), ResponseTime: float64(i)})
	}
	agg := aggregate(records...)

	report := NewReportBuilder().Build(agg, 5)

	require.Len(t, report, 5)
	assert.Equal(t, []string{"/u20", "/u19", "/u18", "/u17", "/u16"}, urls(report))
}

func TestBuild_SortedNonIncreasing(t *testing.T) {
	t.Parallel()

	var records []*models.RequestRecord
	for i := 0; i < 300; i++ {
		records = append(records, &models.RequestRecord{
			URL:          fmt.Sprintf("/u%d", i%37),
			ResponseTime: float64((i*53)%97) / 10,
		})
	}
	agg := aggregate(records...)

	report := NewReportBuilder().Build(agg, 1000)

	require.Len(t, report, 37)
	var countPercSum float64
	for i, row := range report {
		countPercSum += row.CountPerc
		if i > 0 {
			assert.GreaterOrEqual(t, report[i-1].TimeSum, row.TimeSum)
		}
	}
	assert.InDelta(t, 100.0, countPercSum, 0.001*float64(len(report)))
}

func TestBuild_TiesOrderedByURL(t *testing.T) {
	t.Parallel()

	agg := aggregate(
		&models.RequestRecord{URL: "/c", ResponseTime: 1},
		&models.RequestRecord{URL: "/a", ResponseTime: 1},
		&models.RequestRecord{URL: "/b", ResponseTime: 1},
	)

	report := NewReportBuilder().Build(agg, 10)

	assert.Equal(t, []string{"/a", "/b", "/c"}, urls(report))
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	agg := aggregate(
		&models.RequestRecord{URL: "/a", ResponseTime: 0.9},
		&models.RequestRecord{URL: "/a", ResponseTime: 0.1},
		&models.RequestRecord{URL: "/a", ResponseTime: 0.5},
		&models.RequestRecord{URL: "/b", ResponseTime: 0.3},
	)
	builder := NewReportBuilder()

	first := builder.Build(agg, 10)
	second := builder.Build(agg, 10)

	assert.Equal(t, first, second)
	assert.Equal(t, []float64{0.9, 0.1, 0.5}, agg.ByURL["/a"].Times, "times must not be reordered")
}

func TestBuild_EmptyAggregation(t *testing.T) {
	t.Parallel()

	builder := NewReportBuilder()

	assert.Empty(t, builder.Build(models.NewAggregation(), 10))
	assert.Empty(t, builder.Build(nil, 10))
}

func TestBuild_ZeroTotalTime(t *testing.T) {
	t.Parallel()

	agg := aggregate(
		&models.RequestRecord{URL: "/a", ResponseTime: 0},
		&models.RequestRecord{URL: "/b", ResponseTime: 0},
	)

	report := NewReportBuilder().Build(agg, 10)

	require.Len(t, report, 2)
	for _, row := range report {
		assert.Equal(t, 0.0, row.TimePerc)
		assert.Equal(t, 50.0, row.CountPerc)
	}
}

func TestBuild_NonPositiveSize(t *testing.T) {
	t.Parallel()

	agg := aggregate(&models.RequestRecord{URL: "/a", ResponseTime: 1})

	assert.Empty(t, NewReportBuilder().Build(agg, 0))
}

func TestRound3(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       float64
		expected float64
	}{
		{in: 1.23449, expected: 1.234},
		{in: 1.2346, expected: 1.235},
		{in: 33.33333, expected: 33.333},
		{in: 0, expected: 0},
		{in: 100, expected: 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, round3(tt.in))
	}
}

func aggregate(records ...*models.RequestRecord) *models.Aggregation {
	agg := models.NewAggregation()
	for _, record := range records {
		aggregators.Observe(agg, record)
	}
	return agg
}

func urls(report models.Report) []string {
	result := make([]string, 0, len(report))
	for _, row := range report {
		result = append(result, row.URL)
	}
	return result
}
