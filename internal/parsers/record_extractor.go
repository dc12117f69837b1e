package parsers

import (
	"math"
	"strconv"
	"strings"
	"time"

	"log-analyzer/internal/models"
)

const (
	idxClientAddr = 0
	idxTimeLocal  = 3
	idxRequest    = 4
	idxStatus     = 5

	// minTokens covers indexes 0..5 plus a request time distinct from the status.
	minTokens = 7

	timeLocalLayout = "02/Jan/2006:15:04:05"
)

type RecordExtractor interface {
	// Extract converts a raw line into a record. ok is false for unparsable lines.
	Extract(line string) (record *models.RequestRecord, ok bool)
}

type recordExtractor struct{}

func NewRecordExtractor() RecordExtractor {
	return &recordExtractor{}
}

func (e *recordExtractor) Extract(line string) (*models.RequestRecord, bool) {
	return ExtractRecord(Tokenize(line))
}

// ExtractRecord maps tokenizer output onto a RequestRecord. Any structural or type
// failure yields ok=false; nothing is propagated.
func ExtractRecord(tokens []string) (*models.RequestRecord, bool) {
	if len(tokens) < minTokens {
		return nil, false
	}

	request := strings.Fields(tokens[idxRequest])
	if len(request) != 3 {
		return nil, false
	}
	method, url := request[0], request[1]

	// "10/Jan/2024:10:00:00 +0000" -> drop the zone
	timeLocal, _, _ := strings.Cut(tokens[idxTimeLocal], " ")
	timestamp, err := time.Parse(timeLocalLayout, timeLocal)
	if err != nil {
		return nil, false
	}

	status, err := strconv.Atoi(tokens[idxStatus])
	if err != nil {
		return nil, false
	}

	responseTime, err := strconv.ParseFloat(tokens[len(tokens)-1], 64)
	if err != nil || responseTime < 0 || math.IsNaN(responseTime) || math.IsInf(responseTime, 0) {
		return nil, false
	}

	return &models.RequestRecord{
		ClientAddr:   tokens[idxClientAddr],
		Timestamp:    timestamp,
		Method:       method,
		URL:          url,
		Status:       status,
		ResponseTime: responseTime,
	}, true
}
