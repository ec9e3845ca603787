package service

import (
	"github.com/ndewijer/fii-screener/internal/criteria"
	"github.com/ndewijer/fii-screener/internal/model"
)

// peerYieldFallback is returned when the reference dataset carries no
// dividend yields at all.
const peerYieldFallback = 10.0

// PeerDividendYieldAverage computes the dynamic threshold for the
// yield-vs-peers criterion: the mean annualized dividend yield of the
// reference records in the given category.
//
// Three-tier fallback keeps the function total: records of the same category
// that define a yield; failing that, every record that defines one; failing
// that, a fixed constant. Categories unseen in the reference data therefore
// still get a sensible threshold.
func PeerDividendYieldAverage(category string, records []model.FundRecord) float64 {
	var values []float64
	for _, r := range records {
		if criteria.Category(r) == category && r.DividendYieldPct != nil {
			values = append(values, *r.DividendYieldPct)
		}
	}

	if len(values) == 0 {
		for _, r := range records {
			if r.DividendYieldPct != nil {
				values = append(values, *r.DividendYieldPct)
			}
		}
	}

	if len(values) == 0 {
		return peerYieldFallback
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
