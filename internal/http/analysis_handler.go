package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"log-analyzer/internal/analyzers"
	"log-analyzer/internal/shared/validators"
)

const maxAnalysisRequestBytes = 4 << 10

// analysisRequestBody is the optional JSON body of POST /analyses.
type analysisRequestBody struct {
	LogName string `json:"logName" validate:"omitempty,max=255,excludesall=/\\"`
	Force   bool   `json:"force"`
}

type analysisHandler struct {
	analysisService analyzers.AnalysisService
	validate        *validators.Validate
}

func NewAnalysisHandler(analysisService analyzers.AnalysisService) AppHttpHandler {
	return &analysisHandler{
		analysisService: analysisService,
		validate:        validators.New(),
	}
}

// Handle processes POST /analyses. An empty body analyzes the latest log.
func (h *analysisHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var body analysisRequestBody
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxAnalysisRequestBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidRequestBody("invalid JSON body", err)
	}
	body.LogName = strings.TrimSpace(body.LogName)
	if err := h.validate.Struct(&body); err != nil {
		return errInvalidRequestBody("invalid logName", err)
	}

	result, err := h.analysisService.Analyze(r.Context(), analyzers.AnalysisRequest{
		LogName: body.LogName,
		Force:   body.Force,
	})
	if err != nil {
		return err
	}

	w.Header().Set(headerContentType, "application/json")
	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(result)
}
