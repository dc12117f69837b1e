package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"

	"log-analyzer/internal/models"
	"log-analyzer/internal/renderers"
	"log-analyzer/internal/shared/filestorages"
)

var (
	ErrReportAlreadyExists = errors.New("report already exists")
	ErrReportNotFound      = errors.New("report not found")
)

// reportNameRegexp matches any stored report regardless of format.
var reportNameRegexp = regexp.MustCompile(`^report-(\d{4}\.\d{2}\.\d{2})\.[a-z]+$`)

// ReportStore publishes rendered reports named "report-YYYY.MM.DD.<ext>".
//
// Save without overwrite performs an atomic create-if-not-exists: of two runs racing
// on the same log date exactly one publishes, the other gets ErrReportAlreadyExists.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	// Exists reports whether a report in any format was already produced for date.
	Exists(ctx context.Context, date time.Time) (bool, error)
	Save(ctx context.Context, date time.Time, report models.Report, overwrite bool) (string, error)
	// Get opens the stored report for date in the configured format.
	Get(ctx context.Context, date time.Time) (io.ReadCloser, string, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	renderer    renderers.Renderer
}

func NewReportStore(fileStorage filestorages.FileStorage, renderer renderers.Renderer) ReportStore {
	return &reportStore{fileStorage: fileStorage, renderer: renderer}
}

func (s *reportStore) Exists(ctx context.Context, date time.Time) (bool, error) {
	names, err := s.fileStorage.List(ctx, "")
	if err != nil {
		return false, fmt.Errorf("failed to list reports: %w", err)
	}

	want := models.FormatReportDate(date)
	for _, name := range names {
		match := reportNameRegexp.FindStringSubmatch(name)
		if match != nil && match[1] == want {
			return true, nil
		}
	}
	return false, nil
}

func (s *reportStore) Save(ctx context.Context, date time.Time, report models.Report, overwrite bool) (string, error) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, report); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	key := s.getKey(date)
	_, err := s.fileStorage.Put(ctx, key, &buf, filestorages.PutOptions{AllowOverwrite: overwrite})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", ErrReportAlreadyExists
		}
		return "", fmt.Errorf("failed to put report: %w", err)
	}
	return key, nil
}

func (s *reportStore) Get(ctx context.Context, date time.Time) (io.ReadCloser, string, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(date))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, "", ErrReportNotFound
		}
		return nil, "", fmt.Errorf("failed to get report: %w", err)
	}
	return readCloser, s.renderer.ContentType(), nil
}

func (s *reportStore) getKey(date time.Time) string {
	return fmt.Sprintf("report-%s.%s", models.FormatReportDate(date), s.renderer.Extension())
}
