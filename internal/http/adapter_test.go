package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log-analyzer/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler wraps a function to implement AppHttpHandler.
type testHandler struct {
	handleFunc func(w http.ResponseWriter, r *http.Request) error
}

func (h *testHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return h.handleFunc(w, r)
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	return errorResponse
}

func TestErrorHandlingAdapter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		err              error
		expectedStatus   int
		expectedCategory string
		expectedCode     string
		expectedMessage  string
	}{
		{
			name:             "invalid argument",
			err:              svcerrors.NewInvalidArgumentError("ANL_1000", "invalid log name", nil),
			expectedStatus:   http.StatusBadRequest,
			expectedCategory: "invalid_argument",
			expectedCode:     "ANL_1000",
			expectedMessage:  "invalid log name",
		},
		{
			name:             "not found",
			err:              svcerrors.NewNotFoundError("ANL_1001", "no log file to analyze", nil),
			expectedStatus:   http.StatusNotFound,
			expectedCategory: "not_found",
			expectedCode:     "ANL_1001",
			expectedMessage:  "no log file to analyze",
		},
		{
			name:             "resource conflict",
			err:              svcerrors.NewResourceConflictError("ANL_1002", "report for 2017.06.30 already exists", nil),
			expectedStatus:   http.StatusConflict,
			expectedCategory: "resource_conflict",
			expectedCode:     "ANL_1002",
			expectedMessage:  "report for 2017.06.30 already exists",
		},
		{
			name:             "unprocessable",
			err:              svcerrors.NewUnprocessableError("ANL_1003", "too many unparsable lines", nil),
			expectedStatus:   http.StatusUnprocessableEntity,
			expectedCategory: "unprocessable",
			expectedCode:     "ANL_1003",
			expectedMessage:  "too many unparsable lines",
		},
		{
			name:             "internal",
			err:              svcerrors.NewInternalError("ANL_9001", assert.AnError),
			expectedStatus:   http.StatusInternalServerError,
			expectedCategory: "internal",
			expectedCode:     "ANL_9001",
			expectedMessage:  "internal server error",
		},
		{
			name:             "plain error",
			err:              assert.AnError,
			expectedStatus:   http.StatusInternalServerError,
			expectedCategory: "internal",
			expectedCode:     "SYS_9001",
			expectedMessage:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := errorHandlingAdapter(&testHandler{
				handleFunc: func(w http.ResponseWriter, r *http.Request) error {
					return tt.err
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/analyses", nil)
			req.Header.Set(headerRequestID, "req-"+tt.expectedCode)
			rr := httptest.NewRecorder()
			appWriter := newAppResponseWriter(rr, 1)

			handler.ServeHTTP(appWriter, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedCode, appWriter.ErrorCode())

			errorResponse := decodeErrorResponse(t, rr)
			assert.Equal(t, "req-"+tt.expectedCode, errorResponse.RequestID)
			assert.Equal(t, tt.expectedCategory, errorResponse.ErrorCategory)
			assert.Equal(t, tt.expectedCode, errorResponse.ErrorCode)
			assert.Equal(t, tt.expectedMessage, errorResponse.ErrorDescription)
		})
	}
}

func TestErrorHandlingAdapter_NoError(t *testing.T) {
	t.Parallel()

	handler := errorHandlingAdapter(&testHandler{
		handleFunc: func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{}`))
			return nil
		},
	})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/analyses", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, `{}`, rr.Body.String())
}
