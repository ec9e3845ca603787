package model

// Outcome is the graded result of evaluating one criterion against one fund.
type Outcome string

const (
	// OutcomePass indicates the fund satisfies the criterion.
	OutcomePass Outcome = "PASS"

	// OutcomeFail indicates the fund does not satisfy the criterion.
	OutcomeFail Outcome = "FAIL"

	// OutcomeDisqualify is a hard veto distinct from an ordinary fail.
	// Only the price-to-book criterion can produce it, when the ratio
	// exceeds the hard ceiling. It counts as not-passed for scoring but
	// is rendered distinctly in every report.
	OutcomeDisqualify Outcome = "DISQUALIFY"
)

// Passed reports whether the outcome counts toward the fund's score.
func (o Outcome) Passed() bool {
	return o == OutcomePass
}
