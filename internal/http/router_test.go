package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log-analyzer/internal/analyzers"
	analyzermocks "log-analyzer/internal/analyzers/mocks"
	storemocks "log-analyzer/internal/stores/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNewRouter_Routes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockAnalysisService := analyzermocks.NewMockAnalysisService(ctrl)
	mockReportStore := storemocks.NewMockReportStore(ctrl)
	router := NewRouter(mockAnalysisService, mockReportStore, zerolog.Nop())

	mockAnalysisService.EXPECT().
		Analyze(gomock.Any(), analyzers.AnalysisRequest{}).
		Return(&analyzers.AnalysisResult{LogDate: "2017.06.30"}, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/analyses", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(headerRequestID))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports/not-a-date", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "log_analyzer_http_requests_total")

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/analyses", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
