package model

// Brand is static reference data describing a manufacturer whose products can
// substitute the generic line price. The catalog is loaded once and queried
// by material category and location.
type Brand struct {
	Name            string       `json:"name"`
	Category        string       `json:"category"`
	Quality         QualityLevel `json:"quality"`
	Regions         []string     `json:"regions"`
	PriceMultiplier float64      `json:"priceMultiplier"`
	Description     string       `json:"description,omitempty"`
	Availability    string       `json:"availability,omitempty"`
}

// BrandStandard is the sentinel brand name that resets a line back to its
// generic base price.
const BrandStandard = "standard"
