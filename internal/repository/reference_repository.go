package repository

import (
	"database/sql"
	"fmt"

	"github.com/ndewijer/fii-screener/internal/apperrors"
	"github.com/ndewijer/fii-screener/internal/model"
)

// referenceColumns is the fixed column list of the fund_reference table,
// kept in one place so scans stay aligned with the schema.
const referenceColumns = `
	ticker, category, prime_regions, mean_property_age_years, price_to_book,
	dividend_history_years, top_tenant_concentration_pct, dividend_yield_pct,
	uses_derivatives, debt_to_equity_pct, years_to_repay_debt, vacancy_pct,
	other_fund_quotas_pct, cap_rate_pct, share_appreciated_3y, state_count,
	management_fee_pct, issuances_last_24m, daily_liquidity_thousands,
	investment_grade_tenants_pct, mean_contract_term_years, reserve_one_month
`

// ReferenceRepository provides read-only access to the static fund reference
// dataset. The dataset is fixed at deploy time; no mutation methods exist.
type ReferenceRepository struct {
	db *sql.DB
}

// NewReferenceRepository creates a new ReferenceRepository with the provided
// database connection.
func NewReferenceRepository(db *sql.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// GetFund retrieves the static record for a single ticker.
// Returns apperrors.ErrFundNotFound when the ticker is unknown to the dataset.
func (r *ReferenceRepository) GetFund(ticker string) (model.FundRecord, error) {
	query := `SELECT ` + referenceColumns + ` FROM fund_reference WHERE ticker = ?`

	record, err := scanFundRecord(r.db.QueryRow(query, ticker))
	if err == sql.ErrNoRows {
		return model.FundRecord{}, apperrors.ErrFundNotFound
	}
	if err != nil {
		return model.FundRecord{}, fmt.Errorf("%w: query for %s: %v", apperrors.ErrFailedToRetrieveFunds, ticker, err)
	}

	return record, nil
}

// GetAllFunds retrieves every record in the reference dataset, ordered by
// ticker. Used for peer aggregate computation.
func (r *ReferenceRepository) GetAllFunds() ([]model.FundRecord, error) {
	query := `SELECT ` + referenceColumns + ` FROM fund_reference ORDER BY ticker`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %v", apperrors.ErrFailedToRetrieveFunds, err)
	}
	defer rows.Close()

	records := []model.FundRecord{}

	for rows.Next() {
		record, err := scanFundRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan: %v", apperrors.ErrFailedToRetrieveFunds, err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iteration: %v", apperrors.ErrFailedToRetrieveFunds, err)
	}

	return records, nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanFundRecord(s scanner) (model.FundRecord, error) {
	var (
		record   model.FundRecord
		category sql.NullString

		primeRegions, usesDerivatives, appreciated, reserve sql.NullBool

		age, ptb, divYears, concentration, yield, debt, repay, vacancy,
		quotas, capRate, states, fee, issuances, liquidity, igTenants,
		contractTerm sql.NullFloat64
	)

	err := s.Scan(
		&record.Ticker,
		&category,
		&primeRegions,
		&age,
		&ptb,
		&divYears,
		&concentration,
		&yield,
		&usesDerivatives,
		&debt,
		&repay,
		&vacancy,
		&quotas,
		&capRate,
		&appreciated,
		&states,
		&fee,
		&issuances,
		&liquidity,
		&igTenants,
		&contractTerm,
		&reserve,
	)
	if err != nil {
		return model.FundRecord{}, err
	}

	record.Category = nullString(category)
	record.PrimeRegions = nullBool(primeRegions)
	record.MeanPropertyAgeYears = nullFloat(age)
	record.PriceToBook = nullFloat(ptb)
	record.DividendHistoryYears = nullFloat(divYears)
	record.TopTenantConcentrationPct = nullFloat(concentration)
	record.DividendYieldPct = nullFloat(yield)
	record.UsesDerivatives = nullBool(usesDerivatives)
	record.DebtToEquityPct = nullFloat(debt)
	record.YearsToRepayDebt = nullFloat(repay)
	record.VacancyPct = nullFloat(vacancy)
	record.OtherFundQuotasPct = nullFloat(quotas)
	record.CapRatePct = nullFloat(capRate)
	record.ShareAppreciated3Y = nullBool(appreciated)
	record.StateCount = nullFloat(states)
	record.ManagementFeePct = nullFloat(fee)
	record.IssuancesLast24M = nullFloat(issuances)
	record.DailyLiquidityThousands = nullFloat(liquidity)
	record.InvestmentGradeTenantsPct = nullFloat(igTenants)
	record.MeanContractTermYears = nullFloat(contractTerm)
	record.ReserveOneMonth = nullBool(reserve)

	return record, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullBool(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	return &v.Bool
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
