package http

import (
	"net/http"

	"log-analyzer/internal/analyzers"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/stores"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(analysisService analyzers.AnalysisService, reportStore stores.ReportStore, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	analysisHandler := NewAnalysisHandler(analysisService)
	reportHandler := NewReportHandler(reportStore)

	// Routes
	router.Post("/analyses", errorHandlingAdapter(analysisHandler))
	router.Get("/reports/{date}", errorHandlingAdapter(reportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
