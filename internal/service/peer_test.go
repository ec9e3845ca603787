package service_test

import (
	"math"
	"testing"

	"github.com/ndewijer/fii-screener/internal/model"
	"github.com/ndewijer/fii-screener/internal/service"
	"github.com/ndewijer/fii-screener/internal/testutil"
)

func TestPeerDividendYieldAverage(t *testing.T) {
	logistics := func(ticker string, yield float64) model.FundRecord {
		return testutil.NewFundRecord(ticker).WithDividendYield(yield).Record()
	}
	offices := func(ticker string, yield float64) model.FundRecord {
		return testutil.NewFundRecord(ticker).
			WithCategory("Lajes Corporativas").
			WithDividendYield(yield).
			Record()
	}

	t.Run("averages yields within the category", func(t *testing.T) {
		records := []model.FundRecord{
			logistics("GGRC11", 12.5),
			logistics("BTLG11", 12.0),
			logistics("HGLG11", 11.5),
			offices("BTAL11", 8.0),
		}

		got := service.PeerDividendYieldAverage("Logística", records)

		if math.Abs(got-12.0) > 1e-9 {
			t.Errorf("Expected category average 12.0, got %v", got)
		}
	})

	t.Run("records without a yield are skipped", func(t *testing.T) {
		records := []model.FundRecord{
			logistics("GGRC11", 12.5),
			testutil.NewFundRecord("BTLG11").WithoutDividendYield().Record(),
		}

		got := service.PeerDividendYieldAverage("Logística", records)

		if math.Abs(got-12.5) > 1e-9 {
			t.Errorf("Expected average 12.5 over the single yielding record, got %v", got)
		}
	})

	t.Run("unseen category falls back to the global average", func(t *testing.T) {
		records := []model.FundRecord{
			logistics("GGRC11", 12.0),
			offices("BTAL11", 8.0),
		}

		got := service.PeerDividendYieldAverage("Shoppings", records)

		if math.Abs(got-10.0) > 1e-9 {
			t.Errorf("Expected global average 10.0, got %v", got)
		}
	})

	t.Run("no yields at all falls back to the constant", func(t *testing.T) {
		records := []model.FundRecord{
			testutil.NewEmptyFundRecord("AAAA11").Record(),
			testutil.NewEmptyFundRecord("BBBB11").Record(),
		}

		got := service.PeerDividendYieldAverage("Logística", records)

		if got != 10.0 {
			t.Errorf("Expected fallback 10.0, got %v", got)
		}
	})

	t.Run("empty dataset falls back to the constant", func(t *testing.T) {
		if got := service.PeerDividendYieldAverage("Logística", nil); got != 10.0 {
			t.Errorf("Expected fallback 10.0, got %v", got)
		}
	})
}
