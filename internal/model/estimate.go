package model

import (
	"math"
	"time"
)

// Round2 rounds a monetary or quantity value to two decimal places.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// MaterialItem is one priced line of an estimate. BasePrice is the tier base
// unit price before any regional or brand multiplier; UnitPrice is always
// recomputed as round2(basePrice * regionMultiplier * brandMultiplier) so the
// two multipliers never conflate.
type MaterialItem struct {
	Name             string  `json:"name"`
	Quantity         float64 `json:"quantity"`
	Unit             string  `json:"unit"`
	Category         string  `json:"category"`
	BasePrice        float64 `json:"basePrice"`
	UnitPrice        float64 `json:"unitPrice"`
	TotalPrice       float64 `json:"totalPrice"`
	RegionMultiplier float64 `json:"regionMultiplier,omitempty"`
	BrandMultiplier  float64 `json:"brandMultiplier,omitempty"`
	RecommendedBrand string  `json:"recommendedBrand,omitempty"`
	SelectedBrand    string  `json:"selectedBrand,omitempty"`
}

func (m *MaterialItem) regionFactor() float64 {
	if m.RegionMultiplier <= 0 {
		return 1.0
	}
	return m.RegionMultiplier
}

func (m *MaterialItem) brandFactor() float64 {
	if m.BrandMultiplier <= 0 {
		return 1.0
	}
	return m.BrandMultiplier
}

// Reprice recomputes UnitPrice and TotalPrice from the root base price and
// the current multipliers. Lines deserialized from payloads that predate the
// basePrice field recover it from the current unit price and multipliers.
func (m *MaterialItem) Reprice() {
	if m.BasePrice <= 0 {
		m.BasePrice = Round2(m.UnitPrice / (m.regionFactor() * m.brandFactor()))
	}
	m.UnitPrice = Round2(m.BasePrice * m.regionFactor() * m.brandFactor())
	m.TotalPrice = Round2(m.UnitPrice * m.Quantity)
}

// EstimateResult is the aggregate produced by the estimation engine. Each
// mutating operation (regional adjustment, brand substitution) returns a new
// copy; totals are always derived from the materials slice.
type EstimateResult struct {
	ProjectID             string         `json:"projectId"`
	Materials             []MaterialItem `json:"materials"`
	Subtotal              float64        `json:"subtotal"`
	WasteBufferPercentage float64        `json:"wasteBufferPercentage"`
	WasteBuffer           float64        `json:"wasteBuffer"`
	Total                 float64        `json:"total"`
	ProjectDetails        ProjectInput   `json:"projectDetails"`
	GeneratedAt           time.Time      `json:"generatedAt"`
}

// Clone returns a deep copy so a mutation never leaks into the snapshot the
// caller still holds.
func (r *EstimateResult) Clone() *EstimateResult {
	copied := *r
	copied.Materials = make([]MaterialItem, len(r.Materials))
	copy(copied.Materials, r.Materials)
	return &copied
}

// RecomputeTotals rebuilds subtotal, waste buffer and total from the current
// materials. Total is never set independently of the lines that justify it.
func (r *EstimateResult) RecomputeTotals() {
	subtotal := 0.0
	for _, item := range r.Materials {
		subtotal += item.TotalPrice
	}
	r.Subtotal = Round2(subtotal)
	r.WasteBuffer = Round2(r.Subtotal * r.WasteBufferPercentage / 100)
	r.Total = Round2(r.Subtotal + r.WasteBuffer)
}
