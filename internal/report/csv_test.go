package report_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/ndewijer/fii-screener/internal/model"
	"github.com/ndewijer/fii-screener/internal/report"
	"github.com/ndewijer/fii-screener/internal/testutil"
)

func writeCSV(t *testing.T, run model.AnalysisRun) [][]string {
	t.Helper()

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, run); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read back CSV: %v", err)
	}
	return records
}

func TestWriteCSV(t *testing.T) {
	t.Run("writes ticker plus 21 attribute columns", func(t *testing.T) {
		run := model.AnalysisRun{Funds: []model.FundAnalysis{
			{Ticker: "GGRC11", Record: testutil.NewFundRecord("GGRC11").Record()},
		}}

		records := writeCSV(t, run)

		if len(records) != 2 {
			t.Fatalf("Expected header plus 1 row, got %d records", len(records))
		}
		header := records[0]
		if len(header) != 22 {
			t.Fatalf("Expected 22 columns, got %d", len(header))
		}
		if header[0] != "ticker" || header[1] != "category" || header[21] != "reserve_one_month" {
			t.Errorf("Unexpected header layout: %v", header)
		}

		row := records[1]
		if row[0] != "GGRC11" {
			t.Errorf("Expected ticker GGRC11, got %s", row[0])
		}
		if row[1] != "Logística" {
			t.Errorf("Expected category Logística, got %s", row[1])
		}
		if row[2] != "0.95" {
			t.Errorf("Expected price_to_book 0.95, got %s", row[2])
		}
		if row[18] != "true" {
			t.Errorf("Expected prime_regions true, got %s", row[18])
		}
	})

	t.Run("missing attributes become empty cells", func(t *testing.T) {
		run := model.AnalysisRun{Funds: []model.FundAnalysis{
			{Ticker: "ZZZZ11", Record: testutil.NewEmptyFundRecord("ZZZZ11").Record()},
		}}

		records := writeCSV(t, run)

		row := records[1]
		if row[0] != "ZZZZ11" {
			t.Errorf("Expected ticker ZZZZ11, got %s", row[0])
		}
		for i, cell := range row[1:] {
			if cell != "" {
				t.Errorf("Expected empty cell at column %d, got %q", i+1, cell)
			}
		}
	})

	t.Run("one row per fund in run order", func(t *testing.T) {
		run := model.AnalysisRun{Funds: []model.FundAnalysis{
			{Ticker: "VISC11", Record: testutil.NewFundRecord("VISC11").Record()},
			{Ticker: "GGRC11", Record: testutil.NewFundRecord("GGRC11").Record()},
		}}

		records := writeCSV(t, run)

		if len(records) != 3 {
			t.Fatalf("Expected header plus 2 rows, got %d records", len(records))
		}
		if records[1][0] != "VISC11" || records[2][0] != "GGRC11" {
			t.Errorf("Expected run order preserved, got %s then %s", records[1][0], records[2][0])
		}
	})
}
