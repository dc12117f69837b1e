package renderers

import (
	"io"
	"strconv"

	"log-analyzer/internal/models"

	"github.com/olekukonko/tablewriter"
)

var tableHeader = []string{"URL", "Count", "Count %", "Time Sum", "Time %", "Time Avg", "Time Max", "Time Med"}

type tableRenderer struct{}

func NewTableRenderer() Renderer {
	return &tableRenderer{}
}

func (r *tableRenderer) Format() string      { return FormatTable }
func (r *tableRenderer) Extension() string   { return "txt" }
func (r *tableRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r *tableRenderer) Render(w io.Writer, report models.Report) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(tableHeader)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, row := range report {
		table.Append([]string{
			row.URL,
			strconv.FormatInt(row.Count, 10),
			formatFloat(row.CountPerc),
			formatFloat(row.TimeSum),
			formatFloat(row.TimePerc),
			formatFloat(row.TimeAvg),
			formatFloat(row.TimeMax),
			formatFloat(row.TimeMed),
		})
	}
	table.Render()
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
