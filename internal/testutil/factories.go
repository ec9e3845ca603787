package testutil

import (
	"database/sql"
	"testing"

	"github.com/ndewijer/fii-screener/internal/model"
)

// Float returns a pointer to v. Convenience for building records in tests.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// FundRecordBuilder provides a fluent interface for creating test fund
// records, optionally persisted into the fund_reference table.
//
// Example usage:
//
//	// In-memory record with healthy defaults
//	record := testutil.NewFundRecord("GGRC11").Record()
//
//	// Customized record inserted into the reference table
//	record := testutil.NewFundRecord("BTAL11").
//	    WithCategory("Lajes Corporativas").
//	    WithDividendYield(10.8).
//	    Build(t, db)
type FundRecordBuilder struct {
	record model.FundRecord
}

// NewFundRecord creates a FundRecordBuilder with the attributes of a
// healthy logistics fund. Every attribute is set; tests blank out the ones
// they need missing via the With… methods or by building an empty record.
func NewFundRecord(ticker string) *FundRecordBuilder {
	return &FundRecordBuilder{
		record: model.FundRecord{
			Ticker:                    ticker,
			Category:                  String("Logística"),
			PrimeRegions:              Bool(true),
			MeanPropertyAgeYears:      Float(8),
			PriceToBook:               Float(0.95),
			DividendHistoryYears:      Float(5),
			TopTenantConcentrationPct: Float(22),
			DividendYieldPct:          Float(12.5),
			UsesDerivatives:           Bool(false),
			DebtToEquityPct:           Float(30),
			YearsToRepayDebt:          Float(2.5),
			VacancyPct:                Float(3.0),
			OtherFundQuotasPct:        Float(0),
			CapRatePct:                Float(9.5),
			ShareAppreciated3Y:        Bool(true),
			StateCount:                Float(4),
			ManagementFeePct:          Float(1.1),
			IssuancesLast24M:          Float(1),
			DailyLiquidityThousands:   Float(3500),
			InvestmentGradeTenantsPct: Float(80),
			MeanContractTermYears:     Float(7),
			ReserveOneMonth:           Bool(true),
		},
	}
}

// NewEmptyFundRecord creates a builder whose record defines no attributes
// at all, for exercising conservative defaults.
func NewEmptyFundRecord(ticker string) *FundRecordBuilder {
	return &FundRecordBuilder{record: model.FundRecord{Ticker: ticker}}
}

// WithCategory sets the category label.
func (b *FundRecordBuilder) WithCategory(category string) *FundRecordBuilder {
	b.record.Category = String(category)
	return b
}

// WithPriceToBook sets the price-to-book ratio.
func (b *FundRecordBuilder) WithPriceToBook(v float64) *FundRecordBuilder {
	b.record.PriceToBook = Float(v)
	return b
}

// WithoutPriceToBook clears the price-to-book ratio.
func (b *FundRecordBuilder) WithoutPriceToBook() *FundRecordBuilder {
	b.record.PriceToBook = nil
	return b
}

// WithDividendYield sets the annualized dividend yield percentage.
func (b *FundRecordBuilder) WithDividendYield(v float64) *FundRecordBuilder {
	b.record.DividendYieldPct = Float(v)
	return b
}

// WithoutDividendYield clears the dividend yield.
func (b *FundRecordBuilder) WithoutDividendYield() *FundRecordBuilder {
	b.record.DividendYieldPct = nil
	return b
}

// WithVacancy sets the vacancy percentage.
func (b *FundRecordBuilder) WithVacancy(v float64) *FundRecordBuilder {
	b.record.VacancyPct = Float(v)
	return b
}

// Record returns the built record without persisting it.
func (b *FundRecordBuilder) Record() model.FundRecord {
	return b.record
}

// Build inserts the record into the fund_reference table and returns it.
func (b *FundRecordBuilder) Build(t *testing.T, db *sql.DB) model.FundRecord {
	t.Helper()

	query := `
		INSERT INTO fund_reference (
			ticker, category, prime_regions, mean_property_age_years, price_to_book,
			dividend_history_years, top_tenant_concentration_pct, dividend_yield_pct,
			uses_derivatives, debt_to_equity_pct, years_to_repay_debt, vacancy_pct,
			other_fund_quotas_pct, cap_rate_pct, share_appreciated_3y, state_count,
			management_fee_pct, issuances_last_24m, daily_liquidity_thousands,
			investment_grade_tenants_pct, mean_contract_term_years, reserve_one_month
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	r := b.record
	_, err := db.Exec(query,
		r.Ticker,
		nullableString(r.Category),
		nullableBool(r.PrimeRegions),
		nullableFloat(r.MeanPropertyAgeYears),
		nullableFloat(r.PriceToBook),
		nullableFloat(r.DividendHistoryYears),
		nullableFloat(r.TopTenantConcentrationPct),
		nullableFloat(r.DividendYieldPct),
		nullableBool(r.UsesDerivatives),
		nullableFloat(r.DebtToEquityPct),
		nullableFloat(r.YearsToRepayDebt),
		nullableFloat(r.VacancyPct),
		nullableFloat(r.OtherFundQuotasPct),
		nullableFloat(r.CapRatePct),
		nullableBool(r.ShareAppreciated3Y),
		nullableFloat(r.StateCount),
		nullableFloat(r.ManagementFeePct),
		nullableFloat(r.IssuancesLast24M),
		nullableFloat(r.DailyLiquidityThousands),
		nullableFloat(r.InvestmentGradeTenantsPct),
		nullableFloat(r.MeanContractTermYears),
		nullableBool(r.ReserveOneMonth),
	)
	if err != nil {
		t.Fatalf("Failed to create test fund record: %v", err)
	}

	return r
}

func nullableString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableBool(v *bool) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
