// Package report renders completed analysis runs: a colored terminal
// matrix, an HTML report, and a raw-data CSV export.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ndewijer/fii-screener/internal/criteria"
	"github.com/ndewijer/fii-screener/internal/model"
)

var (
	passStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	disqualifyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	scoreStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	headerStyle     = lipgloss.NewStyle().Bold(true)
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	rankHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	rankMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	rankLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func outcomeCell(o model.Outcome) string {
	switch o {
	case model.OutcomeDisqualify:
		return disqualifyStyle.Render("DISQUALIFY")
	case model.OutcomePass:
		return passStyle.Render("PASS")
	default:
		return failStyle.Render("FAIL")
	}
}

// RenderMatrix renders the criteria matrix: one row per criterion, one
// column per fund, plus a final score row.
func RenderMatrix(run model.AnalysisRun) string {
	headers := []string{"#", "Criterion"}
	for _, f := range run.Funds {
		headers = append(headers, f.Ticker)
	}

	var rows [][]string
	for _, id := range criteria.IDs() {
		row := []string{id, criteria.Description(id)}
		for _, f := range run.Funds {
			row = append(row, outcomeCell(f.Outcomes[id]))
		}
		rows = append(rows, row)
	}

	scoreRow := []string{"", "SCORE (passed)"}
	for _, f := range run.Funds {
		scoreRow = append(scoreRow, scoreStyle.Render(fmt.Sprintf("%d/%d", f.Score, len(criteria.Battery))))
	}
	rows = append(rows, scoreRow)

	return renderTable(headers, rows)
}

// RenderRanking renders the funds sorted by score, best first, with a color
// band per score range.
func RenderRanking(run model.AnalysisRun) string {
	ranked := make([]model.FundAnalysis, len(run.Funds))
	copy(ranked, run.Funds)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("RANKING (score per fund)"))
	sb.WriteString("\n")

	for position, f := range ranked {
		style := rankLowStyle
		switch {
		case f.Score >= 15:
			style = rankHighStyle
		case f.Score >= 10:
			style = rankMidStyle
		}

		sb.WriteString(fmt.Sprintf(
			"  %2d. %s  %s\n",
			position+1,
			style.Render(f.Ticker),
			style.Render(fmt.Sprintf("%d/%d points", f.Score, len(criteria.Battery))),
		))
	}

	return sb.String()
}

// renderTable renders a plain column-aligned table. Column widths are
// computed from rendered cell widths so ANSI styling does not skew layout.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	var sb strings.Builder

	writeRow := func(cells []string, style *lipgloss.Style) {
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			padded := cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if style != nil {
				padded = style.Render(padded)
			}
			sb.WriteString(padded)
			if i < len(cells)-1 {
				sb.WriteString(mutedStyle.Render(" | "))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(headers, &headerStyle)

	total := 0
	for _, w := range widths {
		total += w + 3
	}
	sb.WriteString(mutedStyle.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	for _, row := range rows {
		writeRow(row, nil)
	}

	return sb.String()
}
