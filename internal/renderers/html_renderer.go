package renderers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"

	"log-analyzer/internal/models"
)

//go:embed templates/report.html
var defaultHTMLTemplate string

// placeholderRegexp matches $table_json, ${table_json} and the $$ escape.
// Any other $ text is left untouched.
var placeholderRegexp = regexp.MustCompile(`\$(\$|\{table_json\}|table_json\b)`)

type htmlRenderer struct {
	template string
}

func NewHTMLRenderer(templatePath string) (Renderer, error) {
	if templatePath == "" {
		return &htmlRenderer{template: defaultHTMLTemplate}, nil
	}
	content, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read report template %q: %w", templatePath, err)
	}
	return &htmlRenderer{template: string(content)}, nil
}

func (r *htmlRenderer) Format() string      { return FormatHTML }
func (r *htmlRenderer) Extension() string   { return "html" }
func (r *htmlRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *htmlRenderer) Render(w io.Writer, report models.Report) error {
	tableJSON, err := json.Marshal(nonNil(report))
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	html := placeholderRegexp.ReplaceAllStringFunc(r.template, func(match string) string {
		if match == "$$" {
			return "$"
		}
		return string(tableJSON)
	})

	_, err = io.WriteString(w, html)
	return err
}
