package estimate

import "github.com/nurpe/buildcost-estimates/internal/model"

// wastePercentages maps project type to the waste buffer percentage applied
// on top of the materials subtotal (cutting loss, breakage, contingency).
var wastePercentages = map[model.ProjectType]float64{
	model.ProjectTypeHouse:      12,
	model.ProjectTypeRoom:       10,
	model.ProjectTypeWall:       8,
	model.ProjectTypeRoof:       15,
	model.ProjectTypeExtension:  12,
	model.ProjectTypeFoundation: 10,
	model.ProjectTypeRenovation: 15,
}

func WastePercentage(projectType model.ProjectType) float64 {
	return wastePercentages[projectType]
}
