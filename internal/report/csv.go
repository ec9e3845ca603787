package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ndewijer/fii-screener/internal/model"
)

// csvColumns is the fixed export column set: ticker plus the 21 attributes,
// in the original report order.
var csvColumns = []string{
	"ticker",
	"category",
	"price_to_book",
	"dividend_yield_pct",
	"vacancy_pct",
	"daily_liquidity_thousands",
	"management_fee_pct",
	"debt_to_equity_pct",
	"years_to_repay_debt",
	"cap_rate_pct",
	"top_tenant_concentration_pct",
	"investment_grade_tenants_pct",
	"mean_contract_term_years",
	"state_count",
	"issuances_last_24m",
	"mean_property_age_years",
	"dividend_history_years",
	"other_fund_quotas_pct",
	"prime_regions",
	"uses_derivatives",
	"share_appreciated_3y",
	"reserve_one_month",
}

// WriteCSV exports the resolved raw attribute data for every fund in the
// run. Missing attributes produce empty cells.
func WriteCSV(w io.Writer, run model.AnalysisRun) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, f := range run.Funds {
		if err := writer.Write(csvRow(f.Record)); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", f.Ticker, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func csvRow(r model.FundRecord) []string {
	return []string{
		r.Ticker,
		csvString(r.Category),
		csvFloat(r.PriceToBook),
		csvFloat(r.DividendYieldPct),
		csvFloat(r.VacancyPct),
		csvFloat(r.DailyLiquidityThousands),
		csvFloat(r.ManagementFeePct),
		csvFloat(r.DebtToEquityPct),
		csvFloat(r.YearsToRepayDebt),
		csvFloat(r.CapRatePct),
		csvFloat(r.TopTenantConcentrationPct),
		csvFloat(r.InvestmentGradeTenantsPct),
		csvFloat(r.MeanContractTermYears),
		csvFloat(r.StateCount),
		csvFloat(r.IssuancesLast24M),
		csvFloat(r.MeanPropertyAgeYears),
		csvFloat(r.DividendHistoryYears),
		csvFloat(r.OtherFundQuotasPct),
		csvBool(r.PrimeRegions),
		csvBool(r.UsesDerivatives),
		csvBool(r.ShareAppreciated3Y),
		csvBool(r.ReserveOneMonth),
	}
}

func csvString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func csvFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func csvBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
