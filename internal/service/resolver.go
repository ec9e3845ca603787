package service

import (
	"github.com/ndewijer/fii-screener/internal/model"
	"github.com/ndewijer/fii-screener/internal/statusinvest"
)

// Resolve merges a fund's static reference record with its scraped patch
// into the record used for evaluation.
//
// The static record is the base (a zero record when the ticker is unknown to
// the dataset); every field present in the patch overwrites the static
// value. No plausibility validation is performed; scraped data is assumed
// more current than the static snapshot whenever it is present at all.
func Resolve(ticker string, static *model.FundRecord, patch statusinvest.Patch) model.FundRecord {
	record := model.FundRecord{Ticker: ticker}
	if static != nil {
		record = *static
		record.Ticker = ticker
	}

	if patch.PriceToBook != nil {
		record.PriceToBook = patch.PriceToBook
	}
	if patch.DividendYieldPct != nil {
		record.DividendYieldPct = patch.DividendYieldPct
	}
	if patch.VacancyPct != nil {
		record.VacancyPct = patch.VacancyPct
	}
	if patch.DailyLiquidityThousands != nil {
		record.DailyLiquidityThousands = patch.DailyLiquidityThousands
	}
	if patch.ManagementFeePct != nil {
		record.ManagementFeePct = patch.ManagementFeePct
	}

	return record
}
