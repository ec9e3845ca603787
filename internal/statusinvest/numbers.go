package statusinvest

import (
	"strconv"
	"strings"
)

// ParseBrazilianNumber converts a Brazilian-formatted numeric string
// (e.g. "1.234,56", "R$ 12,50", "3,2%") to a float64.
//
// Currency and percent symbols are stripped, thousands dots removed, and the
// decimal comma replaced with a dot. Returns false for text that does not
// parse as a number; unparseable text is absence, never zero.
func ParseBrazilianNumber(text string) (float64, bool) {
	clean := strings.TrimSpace(text)
	clean = strings.ReplaceAll(clean, "R$", "")
	clean = strings.ReplaceAll(clean, "%", "")
	clean = strings.TrimSpace(clean)

	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	if clean == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
