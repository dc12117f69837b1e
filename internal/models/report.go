package models

// ReportRow is one finalized line of the report.
//
// Example JSON:
//
//	{
//	  "url": "/api/v2/banner/25019354",
//	  "count": 2,
//	  "count_perc": 0.041,
//	  "time_sum": 1.39,
//	  "time_perc": 0.067,
//	  "time_avg": 0.028,
//	  "time_max": 0.78,
//	  "time_med": 0.61
//	}
//
// The field names are consumed by the report template and must stay snake_case.
type ReportRow struct {
	URL       string  `json:"url"`
	Count     int64   `json:"count"`
	CountPerc float64 `json:"count_perc"`
	TimeSum   float64 `json:"time_sum"`
	TimePerc  float64 `json:"time_perc"`
	TimeAvg   float64 `json:"time_avg"`
	TimeMax   float64 `json:"time_max"`
	TimeMed   float64 `json:"time_med"`
}

// Report is ordered by TimeSum descending.
type Report []ReportRow
