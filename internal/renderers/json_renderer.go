package renderers

import (
	"encoding/json"
	"io"

	"log-analyzer/internal/models"
)

type jsonRenderer struct{}

func NewJSONRenderer() Renderer {
	return &jsonRenderer{}
}

func (r *jsonRenderer) Format() string      { return FormatJSON }
func (r *jsonRenderer) Extension() string   { return "json" }
func (r *jsonRenderer) ContentType() string { return "application/json" }

func (r *jsonRenderer) Render(w io.Writer, report models.Report) error {
	return json.NewEncoder(w).Encode(nonNil(report))
}

// nonNil makes an empty report encode as [] rather than null.
func nonNil(report models.Report) models.Report {
	if report == nil {
		return models.Report{}
	}
	return report
}
