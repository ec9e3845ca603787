package model

// FundRecord holds the attribute set for a single FII, merged from the static
// reference dataset and whatever the Status Invest scrape returned.
//
// Every attribute is optional: a nil pointer means the attribute is unknown
// for this fund. The criteria engine substitutes a conservative default for
// missing attributes at evaluation time; nothing is materialized here.
type FundRecord struct {
	Ticker string `json:"ticker"`

	Category                  *string  `json:"category,omitempty"`
	PrimeRegions              *bool    `json:"prime_regions,omitempty"`
	MeanPropertyAgeYears      *float64 `json:"mean_property_age_years,omitempty"`
	PriceToBook               *float64 `json:"price_to_book,omitempty"`
	DividendHistoryYears      *float64 `json:"dividend_history_years,omitempty"`
	TopTenantConcentrationPct *float64 `json:"top_tenant_concentration_pct,omitempty"`
	DividendYieldPct          *float64 `json:"dividend_yield_pct,omitempty"`
	UsesDerivatives           *bool    `json:"uses_derivatives,omitempty"`
	DebtToEquityPct           *float64 `json:"debt_to_equity_pct,omitempty"`
	YearsToRepayDebt          *float64 `json:"years_to_repay_debt,omitempty"`
	VacancyPct                *float64 `json:"vacancy_pct,omitempty"`
	OtherFundQuotasPct        *float64 `json:"other_fund_quotas_pct,omitempty"`
	CapRatePct                *float64 `json:"cap_rate_pct,omitempty"`
	ShareAppreciated3Y        *bool    `json:"share_appreciated_3y,omitempty"`
	StateCount                *float64 `json:"state_count,omitempty"`
	ManagementFeePct          *float64 `json:"management_fee_pct,omitempty"`
	IssuancesLast24M          *float64 `json:"issuances_last_24m,omitempty"`
	DailyLiquidityThousands   *float64 `json:"daily_liquidity_thousands,omitempty"`
	InvestmentGradeTenantsPct *float64 `json:"investment_grade_tenants_pct,omitempty"`
	MeanContractTermYears     *float64 `json:"mean_contract_term_years,omitempty"`
	ReserveOneMonth           *bool    `json:"reserve_one_month,omitempty"`
}
