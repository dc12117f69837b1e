package renderers

import (
	"errors"
	"fmt"
	"io"

	"log-analyzer/internal/models"
)

const (
	FormatHTML  = "html"
	FormatJSON  = "json"
	FormatTable = "table"
)

var ErrUnsupportedFormat = errors.New("unsupported report format")

type Renderer interface {
	Format() string
	// Extension is the report file extension without the dot.
	Extension() string
	ContentType() string
	Render(w io.Writer, report models.Report) error
}

// New returns the renderer for format. templatePath only applies to html; empty
// means the built-in template.
func New(format string, templatePath string) (Renderer, error) {
	switch format {
	case FormatJSON:
		return NewJSONRenderer(), nil
	case FormatHTML:
		return NewHTMLRenderer(templatePath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
