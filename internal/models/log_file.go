package models

import (
	"fmt"
	"strings"
	"time"
)

type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

// CompressionFromName picks the decoder by file suffix.
func CompressionFromName(name string) Compression {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return CompressionGzip
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// LogFile identifies an access log inside the log directory.
type LogFile struct {
	Name        string
	Date        time.Time
	Compression Compression
}

const reportDateLayout = "2006.01.02"

// FormatReportDate renders the date part used in report file names, e.g. "2017.06.30".
func FormatReportDate(t time.Time) string {
	return t.UTC().Format(reportDateLayout)
}

func ParseReportDate(s string) (time.Time, error) {
	t, err := time.Parse(reportDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid report date %q: %w", s, err)
	}
	return t, nil
}
