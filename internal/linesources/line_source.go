package linesources

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"

	"log-analyzer/internal/models"
	"log-analyzer/internal/parsers"
	"log-analyzer/internal/shared/filestorages"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	readBufferSize   = 64 * 1024
	ctxCheckInterval = 4096
)

var (
	ErrLogOpenFailed = errors.New("failed to open log")
	ErrLogReadFailed = errors.New("failed to read log")
)

// ReadStats holds the line counters of one pass over a log file.
// Processed never exceeds Total.
type ReadStats struct {
	Total     int64
	Processed int64
}

func (s *ReadStats) Unparsable() int64 {
	return s.Total - s.Processed
}

// ErrorRatio is the share of unparsable lines; zero for an empty file.
func (s *ReadStats) ErrorRatio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Unparsable()) / float64(s.Total)
}

//go:generate mockgen -source=line_source.go -destination=./mocks/line_source_mock.go -package=mocks
type LineSource interface {
	// Records lazily yields the parsable records of logFile in file order.
	//
	// The file is opened when iteration starts and closed when it ends, whether the
	// sequence is exhausted or the consumer breaks early. Counters are written to stats
	// while lines are consumed. A resource failure (missing file, corrupt compressed
	// stream, cancelled ctx) is yielded once with a nil record and ends the sequence;
	// unparsable lines are only counted.
	//
	// The sequence is single-pass: ranging over it again reopens the file.
	Records(ctx context.Context, logFile *models.LogFile, stats *ReadStats) iter.Seq2[*models.RequestRecord, error]
}

type lineSource struct {
	fileStorage filestorages.FileStorage
	extractor   parsers.RecordExtractor
}

func NewLineSource(fileStorage filestorages.FileStorage, extractor parsers.RecordExtractor) LineSource {
	return &lineSource{
		fileStorage: fileStorage,
		extractor:   extractor,
	}
}

func (s *lineSource) Records(ctx context.Context, logFile *models.LogFile, stats *ReadStats) iter.Seq2[*models.RequestRecord, error] {
	if stats == nil {
		stats = &ReadStats{}
	}

	return func(yield func(*models.RequestRecord, error) bool) {
		rc, err := s.open(ctx, logFile)
		if err != nil {
			yield(nil, err)
			return
		}
		defer rc.Close()

		reader := bufio.NewReaderSize(rc, readBufferSize)
		for {
			if stats.Total%ctxCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					yield(nil, err)
					return
				}
			}

			line, readErr := reader.ReadString('\n')
			if len(line) > 0 {
				stats.Total++
				record, ok := s.extractor.Extract(line)
				if ok {
					stats.Processed++
					metricLinesParsed.Inc()
					if !yield(record, nil) {
						return
					}
				} else {
					metricLinesUnparsable.Inc()
				}
			}

			if readErr != nil {
				if !errors.Is(readErr, io.EOF) {
					yield(nil, fmt.Errorf("%w %q: %w", ErrLogReadFailed, logFile.Name, readErr))
				}
				return
			}
		}
	}
}

// open returns the decoded byte stream of logFile. Closing it releases both the
// decoder and the underlying file.
func (s *lineSource) open(ctx context.Context, logFile *models.LogFile) (io.ReadCloser, error) {
	file, err := s.fileStorage.Get(ctx, logFile.Name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrLogOpenFailed, logFile.Name, err)
	}

	switch logFile.Compression {
	case models.CompressionGzip:
		gz, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("%w %q: %w", ErrLogOpenFailed, logFile.Name, err)
		}
		return &decodedFile{Reader: gz, closers: []func() error{gz.Close, file.Close}}, nil

	case models.CompressionZstd:
		dec, err := zstd.NewReader(file, zstd.WithDecoderConcurrency(1))
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("%w %q: %w", ErrLogOpenFailed, logFile.Name, err)
		}
		zr := dec.IOReadCloser()
		return &decodedFile{Reader: zr, closers: []func() error{zr.Close, file.Close}}, nil

	default:
		return file, nil
	}
}

type decodedFile struct {
	io.Reader
	closers []func() error
}

func (f *decodedFile) Close() error {
	var errs []error
	for _, closeFn := range f.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
