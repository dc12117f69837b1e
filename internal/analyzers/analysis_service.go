package analyzers

import (
	"context"
	"errors"
	"time"

	"log-analyzer/internal/aggregators"
	"log-analyzer/internal/linesources"
	"log-analyzer/internal/logfinders"
	"log-analyzer/internal/models"
	"log-analyzer/internal/reports"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/shared/svcerrors"
	"log-analyzer/internal/shared/ulid"
	"log-analyzer/internal/stores"
)

// AnalysisRequest selects the log to analyze. An empty LogName means the latest log.
// Force regenerates a report that already exists.
type AnalysisRequest struct {
	LogName string `json:"logName"`
	Force   bool   `json:"force"`
}

// AnalysisResult summarizes one completed run.
type AnalysisResult struct {
	RunID          string        `json:"runId"`
	LogName        string        `json:"logName"`
	LogDate        string        `json:"logDate"`
	ReportKey      string        `json:"reportKey"`
	TotalLines     int64         `json:"totalLines"`
	ProcessedLines int64         `json:"processedLines"`
	DistinctURLs   int           `json:"distinctUrls"`
	ReportRows     int           `json:"reportRows"`
	Report         models.Report `json:"-"`
}

type Options struct {
	ReportSize int
	// MaxErrorRatio rejects a run whose unparsable/total ratio is above it; 1 disables the check.
	MaxErrorRatio float64
}

//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	// Analyze runs the pipeline once: resolve log, stream and aggregate records,
	// build the ranked report and publish it.
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error)
}

type analysisService struct {
	logFinder     logfinders.LogFinder
	lineSource    linesources.LineSource
	urlAggregator aggregators.URLAggregator
	reportBuilder reports.ReportBuilder
	reportStore   stores.ReportStore
	options       Options
}

func NewAnalysisService(
	logFinder logfinders.LogFinder,
	lineSource linesources.LineSource,
	urlAggregator aggregators.URLAggregator,
	reportBuilder reports.ReportBuilder,
	reportStore stores.ReportStore,
	options Options,
) AnalysisService {
	return &analysisService{
		logFinder:     logFinder,
		lineSource:    lineSource,
		urlAggregator: urlAggregator,
		reportBuilder: reportBuilder,
		reportStore:   reportStore,
		options:       options,
	}
}

func (s *analysisService) Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	start := time.Now()
	runID := ulid.NewULID()
	ctx = loggers.Ctx(ctx).With().Str(loggers.FieldRunID, runID).Logger().WithContext(ctx)

	result, svcErr := s.analyze(ctx, runID, req)

	errorCode := metrics.ValueNoError
	if svcErr != nil {
		errorCode = svcErr.Code
	}
	metricAnalysisRunsTotal.WithLabelValues(errorCode).Inc()
	metricAnalysisDuration.WithLabelValues(errorCode).Observe(time.Since(start).Seconds())

	if svcErr != nil {
		return nil, svcErr
	}
	return result, nil
}

func (s *analysisService) analyze(ctx context.Context, runID string, req AnalysisRequest) (*AnalysisResult, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)

	logFile, svcErr := s.resolveLogFile(ctx, req.LogName)
	if svcErr != nil {
		return nil, svcErr
	}
	logDate := models.FormatReportDate(logFile.Date)
	logger.Debug().Str(loggers.FieldLogFile, logFile.Name).Msgf("started analyzing log dated %s", logDate)

	if !req.Force {
		exists, err := s.reportStore.Exists(ctx, logFile.Date)
		if err != nil {
			return nil, errInternalReportStoreFailed(err)
		}
		if exists {
			return nil, errReportAlreadyExists(logDate, nil)
		}
	}

	stats := &linesources.ReadStats{}
	agg, err := s.urlAggregator.Aggregate(s.lineSource.Records(ctx, logFile, stats))
	if err != nil {
		return nil, errInternalLogReadFailed(err)
	}

	errorRatio := stats.ErrorRatio()
	if s.options.MaxErrorRatio < 1 && errorRatio > s.options.MaxErrorRatio {
		logger.Warn().
			Str(loggers.FieldLogFile, logFile.Name).
			Int64(loggers.FieldTotalLines, stats.Total).
			Int64(loggers.FieldProcessedLines, stats.Processed).
			Float64(loggers.FieldErrorRatio, errorRatio).
			Msg("too many unparsable lines, report not built")
		return nil, errErrorRatioExceeded(errorRatio, s.options.MaxErrorRatio)
	}

	report := s.reportBuilder.Build(agg, s.options.ReportSize)

	reportKey, err := s.reportStore.Save(ctx, logFile.Date, report, req.Force)
	if err != nil {
		if errors.Is(err, stores.ErrReportAlreadyExists) {
			return nil, errReportAlreadyExists(logDate, err)
		}
		return nil, errInternalReportStoreFailed(err)
	}

	logger.Info().
		Str(loggers.FieldLogFile, logFile.Name).
		Str(loggers.FieldReportKey, reportKey).
		Int64(loggers.FieldTotalLines, stats.Total).
		Int64(loggers.FieldProcessedLines, stats.Processed).
		Float64(loggers.FieldErrorRatio, errorRatio).
		Int(loggers.FieldDistinctURLs, len(agg.ByURL)).
		Int(loggers.FieldReportRows, len(report)).
		Msg("analysis completed")

	return &AnalysisResult{
		RunID:          runID,
		LogName:        logFile.Name,
		LogDate:        logDate,
		ReportKey:      reportKey,
		TotalLines:     stats.Total,
		ProcessedLines: stats.Processed,
		DistinctURLs:   len(agg.ByURL),
		ReportRows:     len(report),
		Report:         report,
	}, nil
}

func (s *analysisService) resolveLogFile(ctx context.Context, logName string) (*models.LogFile, *svcerrors.ServiceError) {
	if logName != "" {
		logFile, err := s.logFinder.Resolve(ctx, logName)
		if err != nil {
			return nil, errInvalidRequest(err.Error(), err)
		}
		return logFile, nil
	}

	logFile, err := s.logFinder.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, logfinders.ErrLogFileNotFound) {
			return nil, errLogFileNotFound(err)
		}
		return nil, errInternalLogDiscoveryFailed(err)
	}
	return logFile, nil
}
