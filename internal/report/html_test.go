package report_test

import (
	"bytes"
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/ndewijer/fii-screener/internal/criteria"
	"github.com/ndewijer/fii-screener/internal/model"
	"github.com/ndewijer/fii-screener/internal/report"
	"github.com/ndewijer/fii-screener/internal/testutil"
)

func analyzedFund(ticker string, builder *testutil.FundRecordBuilder) model.FundAnalysis {
	record := builder.Record()
	outcomes := criteria.Evaluate(record, 11.76)
	return model.FundAnalysis{
		Ticker:   ticker,
		Record:   record,
		Outcomes: outcomes,
		Score:    criteria.Score(outcomes),
	}
}

func TestWriteHTML(t *testing.T) {
	run := model.AnalysisRun{
		GeneratedAt: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
		Funds: []model.FundAnalysis{
			analyzedFund("GGRC11", testutil.NewFundRecord("GGRC11")),
			analyzedFund("BADF11", testutil.NewFundRecord("BADF11").WithPriceToBook(2.0).WithVacancy(15)),
		},
	}

	var buf bytes.Buffer
	if err := report.WriteHTML(&buf, run); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	out := buf.String()

	t.Run("contains every ticker and criterion", func(t *testing.T) {
		for _, ticker := range []string{"GGRC11", "BADF11"} {
			if !strings.Contains(out, ticker) {
				t.Errorf("Expected report to contain %s", ticker)
			}
		}
		for _, id := range criteria.IDs() {
			// Descriptions pass through html/template, so < and > arrive
			// entity-escaped.
			escaped := template.HTMLEscapeString(criteria.Description(id))
			if !strings.Contains(out, escaped) {
				t.Errorf("Expected report to contain description for %s", id)
			}
		}
	})

	t.Run("escapes comparison operators in descriptions", func(t *testing.T) {
		if !strings.Contains(out, "New properties (&lt; 15 years)") {
			t.Error("Expected escaped description in report")
		}
		if strings.Contains(out, "New properties (< 15 years)") {
			t.Error("Expected raw description to be absent from report")
		}
	})

	t.Run("renders outcome classes", func(t *testing.T) {
		for _, class := range []string{"pass", "fail", "disqualify"} {
			if !strings.Contains(out, class) {
				t.Errorf("Expected report to use class %q", class)
			}
		}
	})

	t.Run("renders the generation date", func(t *testing.T) {
		if !strings.Contains(out, "31/08/2026") {
			t.Error("Expected report to contain formatted generation date")
		}
	})

	t.Run("renders scores out of 20", func(t *testing.T) {
		if !strings.Contains(out, "20") {
			t.Error("Expected report to mention the criteria total")
		}
	})
}
