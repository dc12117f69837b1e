package models

import "time"

// RequestRecord is one successfully extracted access-log entry.
type RequestRecord struct {
	ClientAddr   string
	Timestamp    time.Time
	Method       string
	URL          string
	Status       int
	ResponseTime float64 // seconds
}
