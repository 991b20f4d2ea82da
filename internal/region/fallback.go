package region

import "strings"

// fallbackMultipliers is the static per-location multiplier table used when
// the advisory service is unavailable. Unknown locations resolve to 1.0.
var fallbackMultipliers = map[string]float64{
	"almaty":      1.15,
	"astana":      1.20,
	"shymkent":    1.05,
	"karaganda":   1.00,
	"aktobe":      0.95,
	"taraz":       0.92,
	"pavlodar":    0.95,
	"atyrau":      1.25,
	"aktau":       1.22,
	"oskemen":     0.98,
	"semey":       0.90,
	"kostanay":    0.93,
	"kyzylorda":   0.90,
	"petropavl":   0.92,
	"taldykorgan": 0.95,
	"turkistan":   0.88,
}

// FallbackMultiplier resolves the static multiplier for a free-form location
// label.
func FallbackMultiplier(location string) float64 {
	key := strings.ToLower(strings.TrimSpace(location))
	if m, ok := fallbackMultipliers[key]; ok {
		return m
	}
	return 1.0
}
