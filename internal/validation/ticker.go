// Package validation provides request parameter validation helpers.
package validation

import (
	"regexp"

	"github.com/ndewijer/fii-screener/internal/apperrors"
)

// tickerPattern matches B3 FII tickers: four letters followed by "11".
var tickerPattern = regexp.MustCompile(`^[A-Za-z]{4}11$`)

// ValidateTicker checks that a ticker parameter is present and shaped like
// an FII ticker. Existence in the reference dataset is not checked here.
func ValidateTicker(ticker string) error {
	if ticker == "" {
		return apperrors.ErrEmptyTicker
	}
	if !tickerPattern.MatchString(ticker) {
		return apperrors.ErrInvalidTicker
	}
	return nil
}
