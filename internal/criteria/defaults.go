package criteria

// Conservative defaults substituted when an attribute is missing from a
// resolved record. Each default is chosen so that a missing attribute
// evaluates to the less favorable outcome for its criterion: an empty
// record passes nothing. Changing any value here materially changes
// pass/fail outcomes for incomplete records.
const (
	defaultPrimeRegions              = false
	defaultMeanPropertyAgeYears      = 99.0
	defaultPriceToBook               = 1.0
	defaultDividendHistoryYears      = 0.0
	defaultTopTenantConcentrationPct = 100.0
	defaultDividendYieldPct          = 0.0
	defaultUsesDerivatives           = true
	defaultDebtToEquityPct           = 100.0
	defaultYearsToRepayDebt          = 99.0
	defaultVacancyPct                = 100.0
	defaultOtherFundQuotasPct        = 100.0
	defaultCapRatePct                = 0.0
	defaultShareAppreciated3Y        = false
	defaultStateCount                = 0.0
	defaultManagementFeePct          = 99.0
	defaultIssuancesLast24M          = 99.0
	defaultDailyLiquidityThousands   = 0.0
	defaultInvestmentGradeTenantsPct = 0.0
	defaultMeanContractTermYears     = 0.0
	defaultReserveOneMonth           = false
	defaultCategory                  = ""
)

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
