package estimate

import "github.com/nurpe/buildcost-estimates/internal/model"

// Material display names. These are the stable keys of the pricing table and
// the strings the brand catalog matches against.
const (
	MaterialCement          = "Cement"
	MaterialSand            = "Sand"
	MaterialGravel          = "Gravel"
	MaterialSteel           = "Steel Reinforcement"
	MaterialBlocks          = "Concrete Blocks"
	MaterialRoofingSheets   = "Roofing Sheets"
	MaterialTimber          = "Timber"
	MaterialPlywood         = "Plywood"
	MaterialInsulation      = "Insulation"
	MaterialWiring          = "Electrical Wiring"
	MaterialPanel           = "Electrical Panel"
	MaterialBreakers        = "Circuit Breakers"
	MaterialOutlets         = "Power Outlets"
	MaterialSwitches        = "Light Switches"
	MaterialPipes           = "PVC Pipes"
	MaterialWaterHeater     = "Water Heater"
	MaterialToilet          = "Toilet Set"
	MaterialSink            = "Sink"
	MaterialShower          = "Shower Set"
	MaterialValves          = "Water Valves"
	MaterialPaint           = "Paint"
	MaterialFloorTiles      = "Floor Tiles"
	MaterialWallTiles       = "Wall Tiles"
	MaterialTileAdhesive    = "Tile Adhesive"
	MaterialTileGrout       = "Tile Grout"
	MaterialCeilingPlaster  = "Ceiling Plaster"
	MaterialWindows         = "Windows"
	MaterialDoors           = "Doors"
	MaterialDrywall         = "Drywall Sheets"
)

type tierPrice struct {
	Basic    float64
	Standard float64
	Premium  float64
}

func (t tierPrice) forQuality(q model.QualityLevel) float64 {
	switch q {
	case model.QualityBasic:
		return t.Basic
	case model.QualityPremium:
		return t.Premium
	default:
		return t.Standard
	}
}

// basePrices is the static price book: base unit price per material keyed by
// quality tier. Read-only reference data.
var basePrices = map[string]tierPrice{
	MaterialCement:         {8, 10, 14},
	MaterialSand:           {25, 30, 38},
	MaterialGravel:         {30, 35, 45},
	MaterialSteel:          {850, 950, 1200},
	MaterialBlocks:         {1.8, 2.2, 3.0},
	MaterialRoofingSheets:  {12, 18, 28},
	MaterialTimber:         {4, 5.5, 8},
	MaterialPlywood:        {18, 24, 35},
	MaterialInsulation:     {6, 9, 14},
	MaterialWiring:         {1.2, 1.8, 2.6},
	MaterialPanel:          {180, 260, 420},
	MaterialBreakers:       {9, 14, 22},
	MaterialOutlets:        {3.5, 5.5, 9},
	MaterialSwitches:       {3, 4.5, 7.5},
	MaterialPipes:          {2.5, 3.5, 5},
	MaterialWaterHeater:    {220, 340, 560},
	MaterialToilet:         {120, 190, 340},
	MaterialSink:           {80, 130, 230},
	MaterialShower:         {140, 220, 400},
	MaterialValves:         {6, 9, 15},
	MaterialPaint:          {4, 6, 9.5},
	MaterialFloorTiles:     {9, 14, 24},
	MaterialWallTiles:      {8, 12, 20},
	MaterialTileAdhesive:   {7, 9, 13},
	MaterialTileGrout:      {2, 3, 4.5},
	MaterialCeilingPlaster: {6.5, 8.5, 12},
	MaterialWindows:        {110, 170, 300},
	MaterialDoors:          {90, 140, 260},
	MaterialDrywall:        {8, 11, 16},
}

// BasePrice returns the tier base unit price for a material. Unknown
// materials price at zero, which only happens on a programming mistake in
// the quantity tables.
func BasePrice(material string, quality model.QualityLevel) float64 {
	return basePrices[material].forQuality(quality)
}
