// Package criteria implements the fixed battery of 20 quality criteria a
// fund is screened against. The battery is static policy: criteria, order,
// and thresholds are fixed at compile time.
package criteria

import (
	"github.com/ndewijer/fii-screener/internal/model"
)

// priceToBookCeiling is the hard veto threshold for C3. A fund trading above
// it is disqualified outright, independent of every other criterion.
const priceToBookCeiling = 1.5

// Criterion is one named quality rule with a pure evaluation function over a
// resolved record. Only C6 consults the peer aggregate.
type Criterion struct {
	ID          string
	Description string
	evaluate    func(r model.FundRecord, peerAvg float64) model.Outcome
}

// Battery is the ordered criteria set C1..C20.
var Battery = []Criterion{
	{
		ID:          "C1",
		Description: "Properties in prime regions",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(boolOr(r.PrimeRegions, defaultPrimeRegions))
		},
	},
	{
		ID:          "C2",
		Description: "New properties (< 15 years)",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(floatOr(r.MeanPropertyAgeYears, defaultMeanPropertyAgeYears) < 15)
		},
	},
	{
		ID:          "C3",
		Description: "Price-to-book below 1.0",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			ptb := floatOr(r.PriceToBook, defaultPriceToBook)
			if ptb > priceToBookCeiling {
				return model.OutcomeDisqualify
			}
			return passWhen(ptb < 1.0)
		},
	},
	{
		ID:          "C4",
		Description: "Consistent dividends > 4 years",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(floatOr(r.DividendHistoryYears, defaultDividendHistoryYears) > 4)
		},
	},
	{
		ID:          "C5",
		Description: "No single-tenant dependency (< 30%)",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(floatOr(r.TopTenantConcentrationPct, defaultTopTenantConcentrationPct) < 30)
		},
	},
	{
		ID:          "C6",
		Description: "Dividend yield above category average",
		evaluate: func(r model.FundRecord, peerAvg float64) model.Outcome {
			return passWhen(floatOr(r.DividendYieldPct, defaultDividendYieldPct) >= peerAvg)
		},
	},
	{
		ID:          "C7",
		Description: "Management free of derivatives/options",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(!boolOr(r.UsesDerivatives, defaultUsesDerivatives))
		},
	},
	{
		ID:          "C8",
		Description: "Net debt / equity < 50%",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(floatOr(r.DebtToEquityPct, defaultDebtToEquityPct) < 50)
		},
	},
	{
		ID:          "C9",
		Description: "< 4 years of income to repay debt",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(floatOr(r.YearsToRepayDebt, defaultYearsToRepayDebt) < 4)
		},
	},
	{
		ID:          "C10",
		Description: "Vacancy < 10%",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(floatOr(r.VacancyPct, defaultVacancyPct) < 10)
		},
	},
	{
		ID:          "C11",
		Description: "< 10% allocated to other FII quotas",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(floatOr(r.OtherFundQuotasPct, defaultOtherFundQuotasPct) < 10)
		},
	},
	{
		ID:          "C12",
		Description: "Cap rate > 8% p.a.",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(floatOr(r.CapRatePct, defaultCapRatePct) > 8)
		},
	},
	{
		ID:          "C13",
		Description: "Book value per share appreciated (3 years)",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(boolOr(r.ShareAppreciated3Y, defaultShareAppreciated3Y))
		},
	},
	{
		ID:          "C14",
		Description: "Properties in >= 3 states",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(floatOr(r.StateCount, defaultStateCount) >= 3)
		},
	},
	{
		ID:          "C15",
		Description: "Admin + management fee < 1.5% p.a.",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(floatOr(r.ManagementFeePct, defaultManagementFeePct) < 1.5)
		},
	},
	{
		ID:          "C16",
		Description: "< 2 share issuances in last 24 months",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(floatOr(r.IssuancesLast24M, defaultIssuancesLast24M) < 2)
		},
	},
	{
		ID:          "C17",
		Description: "Daily liquidity > R$ 1 million",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(floatOr(r.DailyLiquidityThousands, defaultDailyLiquidityThousands) > 1000)
		},
	},
	{
		ID:          "C18",
		Description: "> 70% investment-grade tenants",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(floatOr(r.InvestmentGradeTenantsPct, defaultInvestmentGradeTenantsPct) > 70)
		},
	},
	{
		ID:          "C19",
		Description: "Mean contract term > 5 years",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(floatOr(r.MeanContractTermYears, defaultMeanContractTermYears) > 5)
		},
	},
	{
		ID:          "C20",
		Description: "Reserve >= 1 month of distributions",
		evaluate: func(r model.FundRecord, _ float64) model.Outcome {
			return passWhen(boolOr(r.ReserveOneMonth, defaultReserveOneMonth))
		},
	},
}

// IDs returns the criterion identifiers in battery order.
func IDs() []string {
	ids := make([]string, len(Battery))
	for i, c := range Battery {
		ids[i] = c.ID
	}
	return ids
}

// Description returns the human-readable description for a criterion ID,
// or the empty string for unknown IDs.
func Description(id string) string {
	for _, c := range Battery {
		if c.ID == id {
			return c.Description
		}
	}
	return ""
}

// Evaluate runs the full battery against a resolved record. The returned map
// has exactly one entry per criterion, keyed C1..C20. Evaluation is total:
// missing attributes take their conservative defaults, so partial records
// never cause failure.
func Evaluate(r model.FundRecord, peerAvg float64) map[string]model.Outcome {
	outcomes := make(map[string]model.Outcome, len(Battery))
	for _, c := range Battery {
		outcomes[c.ID] = c.evaluate(r, peerAvg)
	}
	return outcomes
}

// Score counts the passed criteria in an outcome set. Disqualify counts as
// not-passed, same as Fail.
func Score(outcomes map[string]model.Outcome) int {
	score := 0
	for _, o := range outcomes {
		if o.Passed() {
			score++
		}
	}
	return score
}

// Category returns the record's category label, or the empty-string default
// when missing. Kept here so the missing-category policy lives with the
// other conservative defaults.
func Category(r model.FundRecord) string {
	return stringOr(r.Category, defaultCategory)
}

func passWhen(ok bool) model.Outcome {
	if ok {
		return model.OutcomePass
	}
	return model.OutcomeFail
}
