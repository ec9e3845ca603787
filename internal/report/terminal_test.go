package report_test

import (
	"strings"
	"testing"

	"github.com/ndewijer/fii-screener/internal/criteria"
	"github.com/ndewijer/fii-screener/internal/model"
	"github.com/ndewijer/fii-screener/internal/report"
	"github.com/ndewijer/fii-screener/internal/testutil"
)

func TestRenderMatrix(t *testing.T) {
	run := model.AnalysisRun{Funds: []model.FundAnalysis{
		analyzedFund("GGRC11", testutil.NewFundRecord("GGRC11")),
		analyzedFund("BADF11", testutil.NewFundRecord("BADF11").WithPriceToBook(2.0).WithVacancy(15)),
	}}

	out := report.RenderMatrix(run)

	t.Run("has a header with every ticker", func(t *testing.T) {
		for _, ticker := range []string{"GGRC11", "BADF11"} {
			if !strings.Contains(out, ticker) {
				t.Errorf("Expected matrix to contain %s", ticker)
			}
		}
	})

	t.Run("has one row per criterion", func(t *testing.T) {
		for _, id := range criteria.IDs() {
			if !strings.Contains(out, criteria.Description(id)) {
				t.Errorf("Expected matrix to contain description for %s", id)
			}
		}
	})

	t.Run("renders outcome labels", func(t *testing.T) {
		for _, label := range []string{"PASS", "FAIL", "DISQUALIFY"} {
			if !strings.Contains(out, label) {
				t.Errorf("Expected matrix to contain %s", label)
			}
		}
	})

	t.Run("ends with a score row", func(t *testing.T) {
		if !strings.Contains(out, "SCORE (passed)") {
			t.Error("Expected matrix to contain a score row")
		}
		if !strings.Contains(out, "20/20") {
			t.Error("Expected full score 20/20 for the healthy fund")
		}
	})
}

func TestRenderRanking(t *testing.T) {
	run := model.AnalysisRun{Funds: []model.FundAnalysis{
		{Ticker: "LOWW11", Score: 4},
		{Ticker: "HIGH11", Score: 18},
		{Ticker: "MIDD11", Score: 12},
	}}

	out := report.RenderRanking(run)

	t.Run("sorts by score descending", func(t *testing.T) {
		high := strings.Index(out, "HIGH11")
		mid := strings.Index(out, "MIDD11")
		low := strings.Index(out, "LOWW11")

		if high == -1 || mid == -1 || low == -1 {
			t.Fatalf("Expected all tickers in ranking, got:\n%s", out)
		}
		if !(high < mid && mid < low) {
			t.Errorf("Expected order HIGH11, MIDD11, LOWW11, got:\n%s", out)
		}
	})

	t.Run("numbers the positions", func(t *testing.T) {
		if !strings.Contains(out, "1. ") {
			t.Errorf("Expected numbered positions, got:\n%s", out)
		}
	})

	t.Run("shows points out of the criteria total", func(t *testing.T) {
		if !strings.Contains(out, "18/20 points") {
			t.Errorf("Expected 18/20 points for HIGH11, got:\n%s", out)
		}
	})
}
