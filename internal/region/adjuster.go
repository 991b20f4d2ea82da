package region

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nurpe/buildcost-estimates/internal/model"
)

// Multipliers outside this band are clamped before re-pricing.
const (
	minMultiplier = 0.7
	maxMultiplier = 1.8
)

// Source records where the effective multiplier came from, so callers can
// tell an AI-adjusted estimate from a degraded one without it affecting
// correctness.
type Source string

const (
	SourceAdvisor  Source = "advisor"
	SourceFallback Source = "fallback"
)

// Adjusted is the outcome of a regional adjustment. Result is always a
// complete, internally consistent estimate.
type Adjusted struct {
	Result       *model.EstimateResult
	Multiplier   float64
	Source       Source
	Reasoning    string
	MarketTrends []string
}

// Adjuster re-prices estimates for a location. The advisor may be nil, in
// which case every adjustment uses the static table.
type Adjuster struct {
	advisor Advisor
	log     zerolog.Logger
}

func NewAdjuster(advisor Advisor, log zerolog.Logger) *Adjuster {
	return &Adjuster{advisor: advisor, log: log}
}

// AdjustPrices re-prices every material line of the estimate for the given
// location and recomputes the totals. Service degradation is never an error:
// on any failure the static table (or 1.0) is used instead. The input
// estimate is not mutated.
func (a *Adjuster) AdjustPrices(ctx context.Context, result *model.EstimateResult, location string) *Adjusted {
	adjusted := &Adjusted{
		Multiplier: FallbackMultiplier(location),
		Source:     SourceFallback,
	}

	if a.advisor != nil {
		adjustment, err := a.advisor.MarketAdjustment(ctx, location, string(result.ProjectDetails.ProjectType))
		if err != nil {
			a.log.Warn().Err(err).Str("location", location).Msg("advisor unavailable, using fallback multiplier")
		} else {
			adjusted.Multiplier = adjustment.Multiplier
			adjusted.Source = SourceAdvisor
			adjusted.Reasoning = adjustment.Reasoning
			adjusted.MarketTrends = adjustment.MarketTrends
		}
	}

	adjusted.Multiplier = clamp(adjusted.Multiplier)

	out := result.Clone()
	for i := range out.Materials {
		out.Materials[i].RegionMultiplier = adjusted.Multiplier
		out.Materials[i].Reprice()
	}
	out.RecomputeTotals()
	adjusted.Result = out
	return adjusted
}

func clamp(multiplier float64) float64 {
	if multiplier < minMultiplier {
		return minMultiplier
	}
	if multiplier > maxMultiplier {
		return maxMultiplier
	}
	return multiplier
}
