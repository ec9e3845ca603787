package model

import "time"

// FundAnalysis is the complete evaluation result for a single fund:
// the resolved attribute record, the outcome of each of the 20 criteria
// keyed C1..C20, and the derived score (count of passed criteria).
type FundAnalysis struct {
	Ticker   string             `json:"ticker"`
	Record   FundRecord         `json:"record"`
	Outcomes map[string]Outcome `json:"outcomes"`
	Score    int                `json:"score"`

	// RemoteFields lists the attribute names refreshed from the live
	// scrape. Empty when the fund was evaluated from static data alone.
	RemoteFields []string `json:"remote_fields,omitempty"`
}

// AnalysisRun is the output of one full screening pass over the configured
// fund universe. Funds preserves the configured ticker order.
type AnalysisRun struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Funds       []FundAnalysis `json:"funds"`
}

// Fund returns the analysis for the given ticker, if present in the run.
func (r AnalysisRun) Fund(ticker string) (FundAnalysis, bool) {
	for _, f := range r.Funds {
		if f.Ticker == ticker {
			return f, true
		}
	}
	return FundAnalysis{}, false
}
