package http

import (
	"errors"
	"io"
	"net/http"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/stores"

	"github.com/go-chi/chi/v5"
)

type reportHandler struct {
	reportStore stores.ReportStore
}

func NewReportHandler(reportStore stores.ReportStore) AppHttpHandler {
	return &reportHandler{reportStore: reportStore}
}

// Handle processes GET /reports/{date}, date formatted YYYY.MM.DD.
func (h *reportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	date := chi.URLParam(r, "date")
	reportDate, err := models.ParseReportDate(date)
	if err != nil {
		return errInvalidReportDate(date, err)
	}

	report, contentType, err := h.reportStore.Get(r.Context(), reportDate)
	if err != nil {
		if errors.Is(err, stores.ErrReportNotFound) {
			return errReportNotFound(date, err)
		}
		return errInternalReportReadFailed(err)
	}
	defer report.Close()

	w.Header().Set(headerContentType, contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, report); err != nil {
		// headers are already sent
		loggers.Ctx(r.Context()).Warn().Err(err).Msg("report body copy interrupted")
	}
	return nil
}
