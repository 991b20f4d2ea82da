package estimate

import (
	"math"

	"github.com/nurpe/buildcost-estimates/internal/model"
)

// Category labels group lines for display. They carry no computational
// meaning but must stay stable for grouping and reporting.
const (
	CategoryFoundation = "Foundation"
	CategoryWalls      = "Walls"
	CategoryRoofing    = "Roofing"
	CategoryStructure  = "Structure"
	CategoryElectrical = "Electrical"
	CategoryPlumbing   = "Plumbing"
	CategoryFinishing  = "Finishing"
	CategoryOpenings   = "Openings"
)

// Empirical coverage ratios calibrated to industry rule-of-thumb rates.
const (
	houseSlabThickness      = 0.15 // m
	foundationSlabThickness = 0.20 // m

	houseCementPerM3      = 6.5  // bags per m³ of slab
	foundationCementPerM3 = 7.0  // bags per m³ of slab
	sandPerM3             = 0.45 // m³ of sand per m³ of concrete
	gravelPerM3           = 0.90 // m³ of gravel per m³ of concrete
	houseSteelPerM2       = 0.015
	foundationSteelPerM2  = 0.04

	blocksPerM2       = 12.5 // blocks per m² of wall
	mortarCementPerM2 = 0.3  // bags per m² of wall
	mortarSandPerM2   = 0.025
	wallSteelPerM2    = 0.002
	wallSteelMinTons  = 0.1

	sheetsPerM2       = 0.55 // roofing sheets per m² of roof
	timberPerM2       = 1.2  // m of timber per m² of roof
	plywoodPerM2      = 0.35
	insulationOverage = 1.05

	wiringPerM2     = 2.5 // m of wiring per m² of floor
	roomWiringPerM2 = 1.5 // reduced allowance for single-room work
	pipesPerM2      = 0.5

	paintPerM2       = 0.3 // liters per m² of wall
	tileOverage      = 1.05
	renoTileOverage  = 1.10
	bathTilesPerBath = 14.0 // m² of wall tiles per bathroom
	adhesivePerM2    = 0.25 // bags per m² of tiles
	groutPerM2       = 0.3  // kg per m² of tiles
	plasterPerM2     = 0.1  // bags per m² of ceiling

	wallAreaPerWindow = 15.0

	renoDrywallPerM2 = 0.35
	renoPaintPerM2   = 0.25
	renoWiringPerM2  = 1.8
	renoPipesPerM2   = 0.35
)

// ceilQty rounds a discrete purchase quantity (bags, sheets, units) up so the
// estimate never under-orders.
func ceilQty(v float64) float64 {
	return math.Ceil(v)
}

func line(name string, qty float64, unit, category string, q model.QualityLevel) model.MaterialItem {
	price := BasePrice(name, q)
	return model.MaterialItem{
		Name:             name,
		Quantity:         qty,
		Unit:             unit,
		Category:         category,
		BasePrice:        price,
		UnitPrice:        price,
		TotalPrice:       model.Round2(qty * price),
		RegionMultiplier: 1.0,
		BrandMultiplier:  1.0,
	}
}

// roomCount returns the supplied room count or derives one from floor area.
func roomCount(input model.ProjectInput, floorArea float64) int {
	if input.Rooms != nil && *input.Rooms > 0 {
		return *input.Rooms
	}
	derived := int(math.Floor(floorArea / 15))
	if derived < 2 {
		return 2
	}
	return derived
}

func bathroomCount(input model.ProjectInput, floorArea float64) int {
	if input.Bathrooms != nil && *input.Bathrooms > 0 {
		return *input.Bathrooms
	}
	derived := int(math.Floor(floorArea / 50))
	if derived < 1 {
		return 1
	}
	return derived
}

func includeFlag(flag *bool) bool {
	if flag == nil {
		return true
	}
	return *flag
}

// MaterialsFor produces the ordered bill of materials for a project. An
// unrecognized project type yields an empty list; the assembler rejects that
// case before callers ever see it.
func MaterialsFor(input model.ProjectInput, g Geometry) []model.MaterialItem {
	switch input.ProjectType {
	case model.ProjectTypeHouse:
		return houseMaterials(input, g)
	case model.ProjectTypeRoom, model.ProjectTypeExtension:
		return roomMaterials(input, g)
	case model.ProjectTypeWall:
		return wallMaterials(input, g)
	case model.ProjectTypeRoof:
		return roofMaterials(input, g)
	case model.ProjectTypeFoundation:
		return foundationMaterials(input, g)
	case model.ProjectTypeRenovation:
		return renovationMaterials(input, g)
	default:
		return nil
	}
}

func houseMaterials(input model.ProjectInput, g Geometry) []model.MaterialItem {
	q := input.QualityLevel
	rooms := roomCount(input, g.FloorArea)
	baths := bathroomCount(input, g.FloorArea)
	advanced := input.IsAdvanced()

	slabVolume := ConcreteVolume(g.FloorArea, houseSlabThickness)

	items := []model.MaterialItem{
		line(MaterialCement, ceilQty(slabVolume*houseCementPerM3), "bags", CategoryFoundation, q),
		line(MaterialSand, model.Round2(slabVolume*sandPerM3), "m³", CategoryFoundation, q),
		line(MaterialGravel, model.Round2(slabVolume*gravelPerM3), "m³", CategoryFoundation, q),
		line(MaterialSteel, model.Round2(g.FloorArea*houseSteelPerM2), "tons", CategoryFoundation, q),

		line(MaterialBlocks, ceilQty(g.WallArea*blocksPerM2), "units", CategoryWalls, q),
		line(MaterialCement, ceilQty(g.WallArea*mortarCementPerM2), "bags", CategoryWalls, q),
		line(MaterialSand, model.Round2(g.WallArea*mortarSandPerM2), "m³", CategoryWalls, q),

		line(MaterialRoofingSheets, ceilQty(g.RoofArea*sheetsPerM2), "sheets", CategoryRoofing, q),
		line(MaterialTimber, model.Round2(g.RoofArea*timberPerM2), "m", CategoryRoofing, q),
	}

	if includeFlag(input.IncludeElectrical) {
		items = append(items,
			line(MaterialWiring, model.Round2(g.FloorArea*wiringPerM2), "m", CategoryElectrical, q),
		)
		if advanced {
			breakers := rooms * 2
			if breakers < 6 {
				breakers = 6
			}
			items = append(items,
				line(MaterialPanel, 1, "units", CategoryElectrical, q),
				line(MaterialBreakers, float64(breakers), "units", CategoryElectrical, q),
				line(MaterialOutlets, float64(rooms*4+baths), "units", CategoryElectrical, q),
				line(MaterialSwitches, float64(rooms+baths+2), "units", CategoryElectrical, q),
			)
		}
	}

	if includeFlag(input.IncludePlumbing) {
		items = append(items,
			line(MaterialPipes, model.Round2(g.FloorArea*pipesPerM2), "m", CategoryPlumbing, q),
		)
		if advanced {
			items = append(items,
				line(MaterialWaterHeater, 1, "units", CategoryPlumbing, q),
				line(MaterialToilet, float64(baths), "units", CategoryPlumbing, q),
				line(MaterialSink, float64(baths+1), "units", CategoryPlumbing, q),
				line(MaterialShower, float64(baths), "units", CategoryPlumbing, q),
				line(MaterialValves, float64(baths*3+2), "units", CategoryPlumbing, q),
			)
		}
	}

	if includeFlag(input.IncludeFinishing) {
		floorTiles := model.Round2(g.FloorArea * tileOverage)
		items = append(items,
			line(MaterialPaint, model.Round2(g.WallArea*paintPerM2), "liters", CategoryFinishing, q),
			line(MaterialFloorTiles, floorTiles, "m²", CategoryFinishing, q),
		)
		if advanced {
			wallTiles := model.Round2(float64(baths) * bathTilesPerBath * tileOverage)
			tileArea := floorTiles + wallTiles
			items = append(items,
				line(MaterialWallTiles, wallTiles, "m²", CategoryFinishing, q),
				line(MaterialTileAdhesive, ceilQty(tileArea*adhesivePerM2), "bags", CategoryFinishing, q),
				line(MaterialTileGrout, model.Round2(tileArea*groutPerM2), "kg", CategoryFinishing, q),
				line(MaterialCeilingPlaster, ceilQty(g.FloorArea*plasterPerM2), "bags", CategoryFinishing, q),
			)
		}
	}

	items = append(items,
		line(MaterialWindows, ceilQty(g.WallArea/wallAreaPerWindow), "units", CategoryOpenings, q),
		// one door per room plus the entry door
		line(MaterialDoors, float64(rooms+1), "units", CategoryOpenings, q),
	)

	return items
}

func roomMaterials(input model.ProjectInput, g Geometry) []model.MaterialItem {
	q := input.QualityLevel

	windows := ceilQty(g.WallArea / wallAreaPerWindow)
	if windows < 1 {
		windows = 1
	}

	return []model.MaterialItem{
		line(MaterialBlocks, ceilQty(g.WallArea*blocksPerM2), "units", CategoryWalls, q),
		line(MaterialCement, ceilQty(g.WallArea*mortarCementPerM2), "bags", CategoryWalls, q),
		line(MaterialSand, model.Round2(g.WallArea*mortarSandPerM2), "m³", CategoryWalls, q),
		line(MaterialFloorTiles, model.Round2(g.FloorArea*tileOverage), "m²", CategoryFinishing, q),
		line(MaterialPaint, model.Round2(g.WallArea*paintPerM2), "liters", CategoryFinishing, q),
		line(MaterialWiring, model.Round2(g.FloorArea*roomWiringPerM2), "m", CategoryElectrical, q),
		line(MaterialDoors, 1, "units", CategoryOpenings, q),
		line(MaterialWindows, windows, "units", CategoryOpenings, q),
	}
}

func wallMaterials(input model.ProjectInput, g Geometry) []model.MaterialItem {
	q := input.QualityLevel

	items := []model.MaterialItem{
		line(MaterialBlocks, ceilQty(g.WallArea*blocksPerM2), "units", CategoryWalls, q),
		line(MaterialCement, ceilQty(g.WallArea*mortarCementPerM2), "bags", CategoryWalls, q),
		line(MaterialSand, model.Round2(g.WallArea*mortarSandPerM2), "m³", CategoryWalls, q),
	}

	// Reinforcement only when the computed quantity is meaningful, floored
	// at 0.1 tons so a nonzero order is never below the mill minimum.
	steel := model.Round2(g.WallArea * wallSteelPerM2)
	if steel >= 0.05 {
		if steel < wallSteelMinTons {
			steel = wallSteelMinTons
		}
		items = append(items, line(MaterialSteel, steel, "tons", CategoryStructure, q))
	}

	return items
}

func roofMaterials(input model.ProjectInput, g Geometry) []model.MaterialItem {
	q := input.QualityLevel
	return []model.MaterialItem{
		line(MaterialRoofingSheets, ceilQty(g.RoofArea*sheetsPerM2), "sheets", CategoryRoofing, q),
		line(MaterialTimber, model.Round2(g.RoofArea*timberPerM2), "m", CategoryRoofing, q),
		line(MaterialPlywood, ceilQty(g.RoofArea*plywoodPerM2), "sheets", CategoryRoofing, q),
		line(MaterialInsulation, model.Round2(g.RoofArea*insulationOverage), "m²", CategoryRoofing, q),
	}
}

func foundationMaterials(input model.ProjectInput, g Geometry) []model.MaterialItem {
	q := input.QualityLevel
	volume := ConcreteVolume(g.FloorArea, foundationSlabThickness)

	return []model.MaterialItem{
		line(MaterialCement, ceilQty(volume*foundationCementPerM3), "bags", CategoryFoundation, q),
		line(MaterialSand, model.Round2(volume*sandPerM3), "m³", CategoryFoundation, q),
		line(MaterialGravel, model.Round2(volume*gravelPerM3), "m³", CategoryFoundation, q),
		line(MaterialSteel, ceilQty(g.FloorArea*foundationSteelPerM2), "tons", CategoryFoundation, q),
	}
}

func renovationMaterials(input model.ProjectInput, g Geometry) []model.MaterialItem {
	q := input.QualityLevel
	return []model.MaterialItem{
		line(MaterialDrywall, ceilQty(g.WallArea*renoDrywallPerM2), "sheets", CategoryWalls, q),
		line(MaterialPaint, model.Round2(g.WallArea*renoPaintPerM2), "liters", CategoryFinishing, q),
		line(MaterialFloorTiles, model.Round2(g.FloorArea*renoTileOverage), "m²", CategoryFinishing, q),
		line(MaterialWiring, model.Round2(g.FloorArea*renoWiringPerM2), "m", CategoryElectrical, q),
		line(MaterialPipes, model.Round2(g.FloorArea*renoPipesPerM2), "m", CategoryPlumbing, q),
	}
}
