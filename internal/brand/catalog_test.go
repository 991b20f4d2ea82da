package brand

import (
	"testing"

	"github.com/nurpe/buildcost-estimates/internal/model"
)

func TestCategoryForMaterial(t *testing.T) {
	cases := map[string]string{
		"Cement":              "cement",
		"Concrete Blocks":     "blocks",
		"Steel Reinforcement": "steel",
		"Floor Tiles":         "tiles",
		"Electrical Wiring":   "electrical",
		"PVC Pipes":           "plumbing",
		"Toilet Set":          "sanitary",
		"Windows":             "openings",
		"Gravel":              "",
	}
	for material, want := range cases {
		if got := CategoryForMaterial(material); got != want {
			t.Errorf("%s: expected category %q, got %q", material, want, got)
		}
	}
}

func TestBrandsForMaterialOrderedByQuality(t *testing.T) {
	brands := BrandsForMaterial("Cement", "Almaty")
	if len(brands) != 3 {
		t.Fatalf("expected 3 cement brands in Almaty, got %d", len(brands))
	}

	wantOrder := []model.QualityLevel{model.QualityPremium, model.QualityStandard, model.QualityBasic}
	for i, b := range brands {
		if b.Quality != wantOrder[i] {
			t.Errorf("position %d: expected %s quality, got %s", i, wantOrder[i], b.Quality)
		}
	}
}

func TestBrandsForMaterialFiltersByRegion(t *testing.T) {
	// Jambyl Cement is stocked in Almaty but not Atyrau.
	for _, b := range BrandsForMaterial("Cement", "Atyrau") {
		if b.Name == "Jambyl Cement" {
			t.Error("regional brand leaked into Atyrau listing")
		}
	}
	found := false
	for _, b := range BrandsForMaterial("Cement", "Almaty") {
		if b.Name == "Jambyl Cement" {
			found = true
		}
	}
	if !found {
		t.Error("expected Jambyl Cement in Almaty listing")
	}
}

func TestBrandsForMaterialUnknownMaterial(t *testing.T) {
	brands := BrandsForMaterial("Unobtainium", "Almaty")
	if brands == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(brands) != 0 {
		t.Errorf("expected no brands, got %d", len(brands))
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	b, ok := Lookup("heidelberg")
	if !ok {
		t.Fatal("expected to find Heidelberg")
	}
	if b.PriceMultiplier != 1.35 {
		t.Errorf("expected multiplier 1.35, got %v", b.PriceMultiplier)
	}

	if _, ok := Lookup("NoSuchBrand"); ok {
		t.Error("expected lookup miss for unknown brand")
	}
}
