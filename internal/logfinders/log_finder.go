package logfinders

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/filestorages"

	"github.com/samber/lo"
)

var (
	ErrLogFileNotFound = errors.New("log file not found")
	ErrInvalidLogName  = errors.New("invalid log file name")
)

const logDateLayout = "20060102"

//go:generate mockgen -source=log_finder.go -destination=./mocks/log_finder_mock.go -package=mocks
type LogFinder interface {
	// FindLatest returns the log with the most recent filename date, skipping
	// today's log which is still being written.
	FindLatest(ctx context.Context) (*models.LogFile, error)
	// Resolve parses an explicitly named log file.
	Resolve(ctx context.Context, name string) (*models.LogFile, error)
}

type logFinder struct {
	fileStorage filestorages.FileStorage
	namePattern *regexp.Regexp
	now         func() time.Time
}

// NewLogFinder matches files named "<prefix>-YYYYMMDD", optionally suffixed with
// ".gz" or ".zst".
func NewLogFinder(fileStorage filestorages.FileStorage, prefix string) LogFinder {
	return &logFinder{
		fileStorage: fileStorage,
		namePattern: regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-(\d{8})(\.gz|\.zst)?$`),
		now:         time.Now,
	}
}

func (f *logFinder) FindLatest(ctx context.Context) (*models.LogFile, error) {
	names, err := f.fileStorage.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list log directory: %w", err)
	}

	today := f.now().Format(logDateLayout)
	candidates := lo.FilterMap(names, func(name string, _ int) (*models.LogFile, bool) {
		logFile, err := f.parse(name)
		if err != nil {
			return nil, false
		}
		return logFile, logFile.Date.Format(logDateLayout) != today
	})
	if len(candidates) == 0 {
		return nil, ErrLogFileNotFound
	}

	// names are sorted, so on equal dates the first listed file wins
	latest := lo.Reduce(candidates, func(latest *models.LogFile, candidate *models.LogFile, _ int) *models.LogFile {
		if candidate.Date.After(latest.Date) {
			return candidate
		}
		return latest
	}, candidates[0])
	return latest, nil
}

func (f *logFinder) Resolve(ctx context.Context, name string) (*models.LogFile, error) {
	return f.parse(name)
}

func (f *logFinder) parse(name string) (*models.LogFile, error) {
	match := f.namePattern.FindStringSubmatch(name)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogName, name)
	}
	date, err := time.Parse(logDateLayout, match[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLogName, name, err)
	}
	return &models.LogFile{
		Name:        name,
		Date:        date,
		Compression: models.CompressionFromName(name),
	}, nil
}
