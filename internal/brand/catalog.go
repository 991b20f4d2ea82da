// Package brand implements brand substitution on estimate lines and the
// static brand catalog lookup.
package brand

import (
	"sort"
	"strings"

	"github.com/nurpe/buildcost-estimates/internal/model"
)

// regionAll marks a brand available everywhere.
const regionAll = "all"

// categoryPatterns maps material display-name substrings to brand catalog
// categories. Matching is case-insensitive.
var categoryPatterns = []struct {
	substring string
	category  string
}{
	{"cement", "cement"},
	{"block", "blocks"},
	{"steel", "steel"},
	{"roofing", "roofing"},
	{"drywall", "drywall"},
	{"tile", "tiles"},
	{"paint", "paint"},
	{"wiring", "electrical"},
	{"panel", "electrical"},
	{"breaker", "electrical"},
	{"outlet", "electrical"},
	{"switch", "electrical"},
	{"pipe", "plumbing"},
	{"heater", "plumbing"},
	{"toilet", "sanitary"},
	{"sink", "sanitary"},
	{"shower", "sanitary"},
	{"valve", "plumbing"},
	{"window", "openings"},
	{"door", "openings"},
}

// catalog is the static brand reference data: loaded once, never mutated.
var catalog = []model.Brand{
	{Name: "Heidelberg", Category: "cement", Quality: model.QualityPremium, Regions: []string{regionAll}, PriceMultiplier: 1.35, Description: "Premium imported cement", Availability: "in stock"},
	{Name: "Jambyl Cement", Category: "cement", Quality: model.QualityStandard, Regions: []string{"almaty", "taraz", "shymkent"}, PriceMultiplier: 1.0, Description: "Regional standard cement", Availability: "in stock"},
	{Name: "Standard Cement", Category: "cement", Quality: model.QualityBasic, Regions: []string{regionAll}, PriceMultiplier: 0.85, Description: "Economy grade cement", Availability: "in stock"},

	{Name: "SilkRoad Blocks", Category: "blocks", Quality: model.QualityPremium, Regions: []string{regionAll}, PriceMultiplier: 1.25, Description: "Autoclaved precision blocks", Availability: "in stock"},
	{Name: "KazBlock", Category: "blocks", Quality: model.QualityStandard, Regions: []string{regionAll}, PriceMultiplier: 1.0, Description: "Standard concrete blocks", Availability: "in stock"},

	{Name: "ArcelorMittal", Category: "steel", Quality: model.QualityPremium, Regions: []string{regionAll}, PriceMultiplier: 1.3, Description: "Mill-certified rebar", Availability: "on order"},
	{Name: "Temirtau Steel", Category: "steel", Quality: model.QualityStandard, Regions: []string{"karaganda", "astana", "pavlodar"}, PriceMultiplier: 1.0, Description: "Regional mill rebar", Availability: "in stock"},

	{Name: "Ruukki", Category: "roofing", Quality: model.QualityPremium, Regions: []string{regionAll}, PriceMultiplier: 1.4, Description: "Coated steel roofing", Availability: "on order"},
	{Name: "Metallprofil", Category: "roofing", Quality: model.QualityStandard, Regions: []string{regionAll}, PriceMultiplier: 1.05, Description: "Profiled sheet roofing", Availability: "in stock"},

	{Name: "Knauf", Category: "drywall", Quality: model.QualityPremium, Regions: []string{regionAll}, PriceMultiplier: 1.2, Description: "Moisture-resistant boards", Availability: "in stock"},

	{Name: "Kerama Marazzi", Category: "tiles", Quality: model.QualityPremium, Regions: []string{regionAll}, PriceMultiplier: 1.45, Description: "Porcelain tiles", Availability: "in stock"},
	{Name: "Cersanit", Category: "tiles", Quality: model.QualityStandard, Regions: []string{regionAll}, PriceMultiplier: 1.1, Description: "Ceramic tiles", Availability: "in stock"},

	{Name: "Tikkurila", Category: "paint", Quality: model.QualityPremium, Regions: []string{regionAll}, PriceMultiplier: 1.5, Description: "Washable interior paint", Availability: "in stock"},
	{Name: "Alina Paint", Category: "paint", Quality: model.QualityStandard, Regions: []string{"almaty", "astana", "shymkent"}, PriceMultiplier: 1.0, Description: "Water-based interior paint", Availability: "in stock"},
	{Name: "Econom Paint", Category: "paint", Quality: model.QualityBasic, Regions: []string{regionAll}, PriceMultiplier: 0.8, Description: "Budget emulsion", Availability: "in stock"},

	{Name: "Legrand", Category: "electrical", Quality: model.QualityPremium, Regions: []string{regionAll}, PriceMultiplier: 1.4, Description: "Certified wiring accessories", Availability: "in stock"},
	{Name: "IEK", Category: "electrical", Quality: model.QualityStandard, Regions: []string{regionAll}, PriceMultiplier: 1.0, Description: "Standard electrical fittings", Availability: "in stock"},

	{Name: "Rehau", Category: "plumbing", Quality: model.QualityPremium, Regions: []string{regionAll}, PriceMultiplier: 1.35, Description: "Polymer pipe systems", Availability: "on order"},
	{Name: "Valtec", Category: "plumbing", Quality: model.QualityStandard, Regions: []string{regionAll}, PriceMultiplier: 1.05, Description: "Standard pipe and valves", Availability: "in stock"},

	{Name: "Grohe", Category: "sanitary", Quality: model.QualityPremium, Regions: []string{regionAll}, PriceMultiplier: 1.6, Description: "Premium sanitary ware", Availability: "on order"},
	{Name: "Santeri", Category: "sanitary", Quality: model.QualityStandard, Regions: []string{regionAll}, PriceMultiplier: 1.0, Description: "Standard sanitary ware", Availability: "in stock"},

	{Name: "Rehau Windows", Category: "openings", Quality: model.QualityPremium, Regions: []string{regionAll}, PriceMultiplier: 1.45, Description: "Multi-chamber PVC profiles", Availability: "on order"},
	{Name: "KazPlast", Category: "openings", Quality: model.QualityStandard, Regions: []string{"almaty", "astana", "karaganda"}, PriceMultiplier: 1.0, Description: "Standard PVC openings", Availability: "in stock"},
}

// CategoryForMaterial maps a material display name to its brand category by
// substring matching. Empty string when nothing matches.
func CategoryForMaterial(materialName string) string {
	lowered := strings.ToLower(materialName)
	for _, p := range categoryPatterns {
		if strings.Contains(lowered, p.substring) {
			return p.category
		}
	}
	return ""
}

var qualityRank = map[model.QualityLevel]int{
	model.QualityPremium:  0,
	model.QualityStandard: 1,
	model.QualityBasic:    2,
}

// BrandsForMaterial returns the brands available for a material in a
// location, ordered premium first. Empty slice when nothing matches.
func BrandsForMaterial(materialName, location string) []model.Brand {
	category := CategoryForMaterial(materialName)
	if category == "" {
		return []model.Brand{}
	}

	key := strings.ToLower(strings.TrimSpace(location))
	matched := make([]model.Brand, 0, 4)
	for _, b := range catalog {
		if b.Category != category {
			continue
		}
		if availableIn(b, key) {
			matched = append(matched, b)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return qualityRank[matched[i].Quality] < qualityRank[matched[j].Quality]
	})
	return matched
}

// Lookup finds a brand by name, case-insensitively.
func Lookup(name string) (model.Brand, bool) {
	for _, b := range catalog {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return model.Brand{}, false
}

func availableIn(b model.Brand, location string) bool {
	for _, r := range b.Regions {
		if r == regionAll || strings.EqualFold(r, location) {
			return true
		}
	}
	return false
}
