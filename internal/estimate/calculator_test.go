package estimate

import (
	"testing"

	"github.com/nurpe/buildcost-estimates/internal/model"
)

func TestCalculateAssemblesConsistentTotals(t *testing.T) {
	for _, projectType := range model.ProjectTypes {
		input := model.ProjectInput{
			ProjectType:  projectType,
			Length:       12,
			Width:        8,
			Height:       2.8,
			Location:     "Almaty",
			QualityLevel: model.QualityStandard,
		}

		result, err := Calculate(input)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", projectType, err)
		}
		if len(result.Materials) == 0 {
			t.Fatalf("%s: expected materials", projectType)
		}

		subtotal := 0.0
		for _, item := range result.Materials {
			subtotal += item.TotalPrice
		}
		if result.Subtotal != model.Round2(subtotal) {
			t.Errorf("%s: subtotal %v != sum of lines %v", projectType, result.Subtotal, model.Round2(subtotal))
		}
		if result.WasteBuffer != model.Round2(result.Subtotal*result.WasteBufferPercentage/100) {
			t.Errorf("%s: waste buffer %v not derived from subtotal", projectType, result.WasteBuffer)
		}
		if result.Total != model.Round2(result.Subtotal+result.WasteBuffer) {
			t.Errorf("%s: total %v != subtotal+waste", projectType, result.Total)
		}
		if result.GeneratedAt.IsZero() {
			t.Errorf("%s: missing generation timestamp", projectType)
		}
	}
}

func TestCalculateWastePercentages(t *testing.T) {
	expected := map[model.ProjectType]float64{
		model.ProjectTypeHouse:      12,
		model.ProjectTypeRoom:       10,
		model.ProjectTypeWall:       8,
		model.ProjectTypeRoof:       15,
		model.ProjectTypeExtension:  12,
		model.ProjectTypeFoundation: 10,
		model.ProjectTypeRenovation: 15,
	}
	for projectType, pct := range expected {
		if got := WastePercentage(projectType); got != pct {
			t.Errorf("%s: expected waste %v%%, got %v%%", projectType, pct, got)
		}
	}
}

func TestCalculateRejectsUnknownProjectType(t *testing.T) {
	_, err := Calculate(model.ProjectInput{
		ProjectType:  "garage",
		Length:       5,
		Width:        5,
		Height:       2.5,
		QualityLevel: model.QualityBasic,
	})
	if err == nil {
		t.Fatal("expected error for unknown project type")
	}
}

func TestCalculateProjectIDsAreUnique(t *testing.T) {
	input := model.ProjectInput{
		ProjectType:  model.ProjectTypeRoom,
		Length:       4,
		Width:        3,
		Height:       2.5,
		QualityLevel: model.QualityBasic,
	}

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		result, err := Calculate(input)
		if err != nil {
			t.Fatal(err)
		}
		if result.ProjectID == "" {
			t.Fatal("empty project id")
		}
		if _, dup := seen[result.ProjectID]; dup {
			t.Fatalf("duplicate project id %s", result.ProjectID)
		}
		seen[result.ProjectID] = struct{}{}
	}
}

func TestCalculateDoesNotMutateInput(t *testing.T) {
	input := model.ProjectInput{
		ProjectType:  model.ProjectTypeHouse,
		Length:       10,
		Width:        9,
		Height:       2.7,
		QualityLevel: model.QualityPremium,
	}
	before := input

	if _, err := Calculate(input); err != nil {
		t.Fatal(err)
	}
	if input != before {
		t.Error("input mutated by Calculate")
	}
}
