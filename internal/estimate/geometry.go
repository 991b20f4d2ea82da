// Package estimate implements the material quantity and pricing engine that
// turns project dimensions into a priced bill of materials.
package estimate

// roofPitchFactor adds a 15% allowance for pitch and overhang on the plan
// roof area.
const roofPitchFactor = 1.15

// Geometry holds the derived areas the quantity formulas work from. Callers
// guarantee positive dimensions; the derivations have no error conditions.
type Geometry struct {
	FloorArea float64
	WallArea  float64
	RoofArea  float64
}

func FloorArea(length, width float64) float64 {
	return length * width
}

// WallArea is perimeter times height; openings are ignored.
func WallArea(length, width, height float64) float64 {
	return 2 * (length + width) * height
}

func RoofArea(length, width float64) float64 {
	return length * width * roofPitchFactor
}

func ConcreteVolume(area, thickness float64) float64 {
	return area * thickness
}

func deriveGeometry(length, width, height float64) Geometry {
	return Geometry{
		FloorArea: FloorArea(length, width),
		WallArea:  WallArea(length, width, height),
		RoofArea:  RoofArea(length, width),
	}
}
