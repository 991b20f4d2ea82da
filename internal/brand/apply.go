package brand

import (
	"fmt"

	"github.com/nurpe/buildcost-estimates/internal/model"
)

// ErrLineOutOfRange reports a brand application against a line index that
// does not exist. This is a caller contract violation, not a runtime
// condition.
var ErrLineOutOfRange = fmt.Errorf("material line index out of range")

// Apply returns a copy of the estimate with the brand applied to one line.
// The line keeps its root base price; the new unit price is
// round2(basePrice * regionMultiplier * brandMultiplier), so brand changes
// never compound with earlier brand or regional adjustments. Selecting the
// "standard" sentinel resets the line to its base price.
func Apply(result *model.EstimateResult, lineIndex int, brandName string, multiplier float64) (*model.EstimateResult, error) {
	if lineIndex < 0 || lineIndex >= len(result.Materials) {
		return nil, fmt.Errorf("%w: %d of %d", ErrLineOutOfRange, lineIndex, len(result.Materials))
	}

	if brandName == model.BrandStandard {
		multiplier = 1.0
	}
	if multiplier <= 0 {
		multiplier = 1.0
	}

	out := result.Clone()
	item := &out.Materials[lineIndex]
	item.SelectedBrand = brandName
	item.BrandMultiplier = multiplier
	item.Reprice()

	out.RecomputeTotals()
	return out, nil
}
