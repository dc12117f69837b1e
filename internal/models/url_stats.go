package models

// URLStats accumulates timing statistics for a single URL during one aggregation pass.
// Times keeps arrival order; the median is derived from a sorted copy.
type URLStats struct {
	URL     string
	Count   int64
	TimeSum float64
	Times   []float64
	TimeMax float64
}

func NewURLStats(url string) *URLStats {
	return &URLStats{URL: url}
}

// Observe records one response time.
func (s *URLStats) Observe(responseTime float64) {
	if s.Count == 0 || responseTime > s.TimeMax {
		s.TimeMax = responseTime
	}
	s.Count++
	s.TimeSum += responseTime
	s.Times = append(s.Times, responseTime)
}

// Aggregation is the result of reducing a record stream: per-URL statistics plus
// the grand totals used for percentage normalization.
type Aggregation struct {
	ByURL        map[string]*URLStats
	TotalCount   int64
	TotalTimeSum float64
}

func NewAggregation() *Aggregation {
	return &Aggregation{ByURL: make(map[string]*URLStats)}
}

func (a *Aggregation) IsEmpty() bool {
	return a.TotalCount == 0
}
