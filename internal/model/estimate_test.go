package model

import (
	"encoding/json"
	"testing"
)

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		10.004:  10.0,
		10.006:  10.01,
		0:       0,
		1.23456: 1.23,
		97.2:    97.2,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Errorf("Round2(%v): expected %v, got %v", in, want, got)
		}
	}
}

func TestRepriceComposesMultipliers(t *testing.T) {
	item := MaterialItem{
		Name:             "Cement",
		Quantity:         5,
		BasePrice:        10,
		RegionMultiplier: 1.2,
		BrandMultiplier:  1.35,
	}
	item.Reprice()

	if item.UnitPrice != Round2(10*1.2*1.35) {
		t.Errorf("expected unit price %v, got %v", Round2(10*1.2*1.35), item.UnitPrice)
	}
	if item.TotalPrice != Round2(item.UnitPrice*5) {
		t.Errorf("expected total %v, got %v", Round2(item.UnitPrice*5), item.TotalPrice)
	}
}

func TestRepriceRecoversBasePrice(t *testing.T) {
	// Lines from older payloads carry only the adjusted unit price.
	item := MaterialItem{
		Quantity:         2,
		UnitPrice:        12,
		RegionMultiplier: 1.2,
	}
	item.Reprice()

	if item.BasePrice != 10 {
		t.Errorf("expected recovered base price 10, got %v", item.BasePrice)
	}
	if item.UnitPrice != 12 {
		t.Errorf("expected unit price unchanged at 12, got %v", item.UnitPrice)
	}
}

func TestRepriceZeroMultipliersActAsOne(t *testing.T) {
	item := MaterialItem{Quantity: 3, BasePrice: 7}
	item.Reprice()

	if item.UnitPrice != 7 {
		t.Errorf("expected unit price 7, got %v", item.UnitPrice)
	}
	if item.TotalPrice != 21 {
		t.Errorf("expected total 21, got %v", item.TotalPrice)
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := &EstimateResult{
		ProjectID: "EST-1",
		Materials: []MaterialItem{{Name: "Cement", Quantity: 1, BasePrice: 10, UnitPrice: 10, TotalPrice: 10}},
	}
	copied := original.Clone()
	copied.Materials[0].UnitPrice = 99

	if original.Materials[0].UnitPrice != 10 {
		t.Errorf("clone shares materials backing array")
	}
}

func TestRecomputeTotals(t *testing.T) {
	result := &EstimateResult{
		Materials: []MaterialItem{
			{TotalPrice: 100},
			{TotalPrice: 55.55},
		},
		WasteBufferPercentage: 12,
	}
	result.RecomputeTotals()

	if result.Subtotal != 155.55 {
		t.Errorf("expected subtotal 155.55, got %v", result.Subtotal)
	}
	if result.WasteBuffer != Round2(155.55*0.12) {
		t.Errorf("expected waste buffer %v, got %v", Round2(155.55*0.12), result.WasteBuffer)
	}
	if result.Total != Round2(result.Subtotal+result.WasteBuffer) {
		t.Errorf("expected total %v, got %v", Round2(result.Subtotal+result.WasteBuffer), result.Total)
	}
}

func TestEstimateResultJSONRoundTrip(t *testing.T) {
	rooms := 3
	original := EstimateResult{
		ProjectID: "EST-20250101120000-abcd1234",
		Materials: []MaterialItem{
			{Name: "Cement", Quantity: 10, Unit: "bags", Category: "Walls", BasePrice: 10, UnitPrice: 12, TotalPrice: 120, RegionMultiplier: 1.2, SelectedBrand: "Heidelberg"},
		},
		Subtotal:              120,
		WasteBufferPercentage: 12,
		WasteBuffer:           14.4,
		Total:                 134.4,
		ProjectDetails: ProjectInput{
			ProjectType:  ProjectTypeHouse,
			Length:       10,
			Width:        8,
			Height:       2.7,
			Location:     "Almaty",
			QualityLevel: QualityStandard,
			Rooms:        &rooms,
		},
	}

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}
	var decoded EstimateResult
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}

	if decoded.ProjectID != original.ProjectID {
		t.Errorf("project id lost: %q", decoded.ProjectID)
	}
	if len(decoded.Materials) != 1 || decoded.Materials[0].SelectedBrand != "Heidelberg" {
		t.Errorf("material line lost brand selection: %+v", decoded.Materials)
	}
	if decoded.Materials[0].RegionMultiplier != 1.2 {
		t.Errorf("region multiplier lost: %v", decoded.Materials[0].RegionMultiplier)
	}
	if decoded.ProjectDetails.Rooms == nil || *decoded.ProjectDetails.Rooms != 3 {
		t.Errorf("rooms override lost: %v", decoded.ProjectDetails.Rooms)
	}
	if decoded.Total != 134.4 {
		t.Errorf("total lost: %v", decoded.Total)
	}
}
