package statusinvest

// Patch is the sparse set of attributes a scrape managed to extract for one
// fund. A nil field means the page did not expose that value (or it failed
// to parse), never that the value is zero.
type Patch struct {
	PriceToBook             *float64
	DividendYieldPct        *float64
	VacancyPct              *float64
	DailyLiquidityThousands *float64
	ManagementFeePct        *float64
}

// IsEmpty reports whether the scrape yielded no fields at all.
func (p Patch) IsEmpty() bool {
	return p.PriceToBook == nil &&
		p.DividendYieldPct == nil &&
		p.VacancyPct == nil &&
		p.DailyLiquidityThousands == nil &&
		p.ManagementFeePct == nil
}

// Fields returns the attribute names present in the patch, for logging and
// report narration.
func (p Patch) Fields() []string {
	var fields []string
	if p.PriceToBook != nil {
		fields = append(fields, "price_to_book")
	}
	if p.DividendYieldPct != nil {
		fields = append(fields, "dividend_yield_pct")
	}
	if p.VacancyPct != nil {
		fields = append(fields, "vacancy_pct")
	}
	if p.DailyLiquidityThousands != nil {
		fields = append(fields, "daily_liquidity_thousands")
	}
	if p.ManagementFeePct != nil {
		fields = append(fields, "management_fee_pct")
	}
	return fields
}
