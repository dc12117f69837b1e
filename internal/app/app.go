package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"log-analyzer/internal/aggregators"
	"log-analyzer/internal/analyzers"
	internalhttp "log-analyzer/internal/http"
	"log-analyzer/internal/linesources"
	"log-analyzer/internal/logfinders"
	"log-analyzer/internal/models"
	"log-analyzer/internal/parsers"
	"log-analyzer/internal/renderers"
	"log-analyzer/internal/reports"
	"log-analyzer/internal/shared/configs"
	"log-analyzer/internal/shared/filestorages"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/svcerrors"
	"log-analyzer/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	analysisService analyzers.AnalysisService
	tableRenderer   renderers.Renderer
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "log-analyzer").
		Logger()

	// Logs are read from one root, reports are published under another
	logStorage, err := filestorages.NewFileStorage(config.Analyzer.LogDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize log storage: %w", err)
	}
	reportStorage, err := filestorages.NewFileStorage(config.Analyzer.ReportDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report storage: %w", err)
	}

	reportRenderer, err := renderers.New(config.Analyzer.ReportFormat, config.Analyzer.ReportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report renderer: %w", err)
	}

	// Initialize analysis service
	logFinder := logfinders.NewLogFinder(logStorage, config.Analyzer.LogPrefix)
	lineSource := linesources.NewLineSource(logStorage, parsers.NewRecordExtractor())
	reportStore := stores.NewReportStore(reportStorage, reportRenderer)
	analysisService := analyzers.NewAnalysisService(
		logFinder,
		lineSource,
		aggregators.NewURLAggregator(),
		reports.NewReportBuilder(),
		reportStore,
		analyzers.Options{
			ReportSize:    config.Analyzer.ReportSize,
			MaxErrorRatio: config.Analyzer.MaxErrorRatio,
		},
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(analysisService, reportStore, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:          config,
		appLogger:       appLogger,
		server:          server,
		analysisService: analysisService,
		tableRenderer:   renderers.NewTableRenderer(),
	}, nil
}

// RunOnce performs a single analysis with the app logger attached to ctx.
func (app *App) RunOnce(ctx context.Context, req analyzers.AnalysisRequest) (*analyzers.AnalysisResult, error) {
	runLogger := app.appLogger.With().Str(loggers.FieldComponent, "analyzer").Logger()
	return app.analysisService.Analyze(runLogger.WithContext(ctx), req)
}

// PrintReport writes report as a console table.
func (app *App) PrintReport(w io.Writer, report models.Report) error {
	return app.tableRenderer.Render(w, report)
}

// ExitCode maps a RunOnce error to a process exit status. Having no new log to
// analyze and having already produced its report are normal outcomes.
func (app *App) ExitCode(err error) int {
	if err == nil {
		return 0
	}
	svcErr, ok := svcerrors.AsServiceError(err)
	if ok && (svcErr.IsNotFoundError() || svcErr.IsResourceConflictError()) {
		app.appLogger.Info().Str(loggers.FieldErrorCode, svcErr.Code).Msg(svcErr.Message)
		return 0
	}
	app.appLogger.Error().Err(err).Msg("analysis failed")
	return 1
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting log-analyzer service on port %d (log_level=%s, log_dir=%s, report_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Analyzer.LogDir,
			app.config.Analyzer.ReportDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
