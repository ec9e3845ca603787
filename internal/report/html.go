package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/ndewijer/fii-screener/internal/criteria"
	"github.com/ndewijer/fii-screener/internal/model"
)

//go:embed template.html
var templateFS embed.FS

var htmlTemplate = template.Must(template.ParseFS(templateFS, "template.html"))

type htmlCell struct {
	Class string
	Label string
}

type htmlRow struct {
	ID          string
	Description string
	Cells       []htmlCell
}

type htmlData struct {
	GeneratedAt string
	Tickers     []string
	Rows        []htmlRow
	Scores      []int
	Total       int
}

// WriteHTML renders the criteria matrix as a standalone HTML report.
func WriteHTML(w io.Writer, run model.AnalysisRun) error {
	data := htmlData{
		GeneratedAt: run.GeneratedAt.Format("02/01/2006"),
		Total:       len(criteria.Battery),
	}

	for _, f := range run.Funds {
		data.Tickers = append(data.Tickers, f.Ticker)
		data.Scores = append(data.Scores, f.Score)
	}

	for _, id := range criteria.IDs() {
		row := htmlRow{ID: id, Description: criteria.Description(id)}
		for _, f := range run.Funds {
			row.Cells = append(row.Cells, htmlOutcomeCell(f.Outcomes[id]))
		}
		data.Rows = append(data.Rows, row)
	}

	if err := htmlTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	return nil
}

func htmlOutcomeCell(o model.Outcome) htmlCell {
	switch o {
	case model.OutcomeDisqualify:
		return htmlCell{Class: "disqualify", Label: "DISQUALIFY"}
	case model.OutcomePass:
		return htmlCell{Class: "pass", Label: "PASS"}
	default:
		return htmlCell{Class: "fail", Label: "FAIL"}
	}
}
